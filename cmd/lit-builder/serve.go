package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mizushino/lit-builder/internal/config"
	"github.com/mizushino/lit-builder/internal/dev"
	"github.com/mizushino/lit-builder/pkg/builder"
	"github.com/mizushino/lit-builder/pkg/preview"
	"github.com/mizushino/lit-builder/pkg/template"
)

func serveCmd() *cobra.Command {
	var (
		port  int
		host  string
		entry string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the descriptor with live reload",
		Long: `Start the preview server.

The server compiles the entry descriptor on every request, so edits
show up on refresh; connected browsers are also reloaded
automatically when the descriptor file changes.

Endpoints:
  /         rendered preview
  /metrics  Prometheus metrics
  /healthz  liveness

Examples:
  lit-builder serve
  lit-builder serve --port=8080 --entry=site.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, entry)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from litbuilder.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from litbuilder.json)")
	cmd.Flags().StringVarP(&entry, "entry", "e", "", "Descriptor file (default from litbuilder.json)")

	return cmd
}

func runServe(port int, host, entry string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	// Apply command-line overrides
	if port > 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}
	if entry != "" {
		cfg.Entry = entry
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	source := func() (*template.Result, error) {
		nodes, err := builder.DecodeFile(cfg.Entry)
		if err != nil {
			return nil, err
		}
		return builder.Build(nodes...), nil
	}

	server := preview.NewServer(preview.Config{
		Host:        cfg.Dev.Host,
		Port:        cfg.Dev.Port,
		Source:      source,
		Title:       cfg.Title,
		Lang:        cfg.Lang,
		StyleSheets: cfg.StyleSheets,
		LiveReload:  true,
	})

	watcher := dev.NewWatcher(dev.WatcherConfig{
		Paths: []string{cfg.Entry},
	}, server.NotifyChange)
	watcher.Start()
	defer watcher.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printBanner()
	fmt.Println()
	info("Serving %s on http://%s", cfg.Entry, server.Addr())
	info("Press Ctrl+C to stop")
	fmt.Println()

	if err := server.ListenAndServe(ctx); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
