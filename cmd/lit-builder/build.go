package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mizushino/lit-builder/internal/config"
	"github.com/mizushino/lit-builder/pkg/builder"
	"github.com/mizushino/lit-builder/pkg/template"
)

func buildCmd() *cobra.Command {
	var (
		entry  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the descriptor file to HTML",
		Long: `Compile the descriptor file into a static HTML document.

The entry descriptor (JSON or YAML) is compiled into template
fragments and values, rendered through the engine, and written as
index.html to the output directory.

Examples:
  lit-builder build
  lit-builder build --entry=site.yaml --output=public`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(entry, output)
		},
	}

	cmd.Flags().StringVarP(&entry, "entry", "e", "", "Descriptor file (default from litbuilder.json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from litbuilder.json)")

	return cmd
}

func runBuild(entry, output string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if entry != "" {
		cfg.Entry = entry
	}
	if output != "" {
		cfg.Output = output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, bytesWritten, values, err := buildToDisk(cfg)
	if err != nil {
		return err
	}

	success("Built %s → %s (%d bytes, %d dynamic values)", cfg.Entry, path, bytesWritten, values)
	if values > 0 {
		warn("dynamic bindings render as static reflections; live handlers need the engine at runtime")
	}
	return nil
}

// buildToDisk compiles the entry descriptor and writes index.html to the
// output directory. It returns the written path, its size, and the number
// of dynamic values in the compiled template.
func buildToDisk(cfg *config.Config) (string, int, int, error) {
	nodes, err := builder.DecodeFile(cfg.Entry)
	if err != nil {
		return "", 0, 0, err
	}
	res := builder.Build(nodes...)

	var buf bytes.Buffer
	renderer := template.NewRenderer(template.RendererConfig{})
	err = renderer.RenderPage(&buf, template.PageData{
		Body:        res,
		Title:       cfg.Title,
		Lang:        cfg.Lang,
		StyleSheets: cfg.StyleSheets,
	})
	if err != nil {
		return "", 0, 0, err
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return "", 0, 0, fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(cfg.Output, "index.html")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", 0, 0, fmt.Errorf("write %s: %w", path, err)
	}

	return path, buf.Len(), len(res.Values), nil
}
