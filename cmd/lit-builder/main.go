package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬  ┬┌┬┐   ┌┐ ┬ ┬┬┬  ┌┬┐┌─┐┬─┐
  │  │ │ ───├┴┐│ │││   ││├┤ ├┬┘
  ┴─┘┴ ┴    └─┘└─┘┴┴─┘─┴┘└─┘┴└─
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "lit-builder",
		Short: "Compile element descriptors into tagged HTML templates",
		Long: `lit-builder compiles declarative element descriptors into the
fragment/value pairs consumed by a tagged-template rendering engine.

Descriptor trees are plain data (JSON or YAML): a tag name, static
attributes, and children. The compiler emits escaped static markup
with dynamic bindings threaded out-of-band, and the bundled engine
renders the result to HTML.

Commands:
  • build    compile the descriptor file to HTML
  • serve    preview with live reload
  • publish  upload the build output to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		buildCmd(),
		serveCmd(),
		publishCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
