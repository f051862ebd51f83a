// Package main is the entrypoint for the docsmith CLI.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/sgx-labs/docsmith/internal/config"
	"github.com/sgx-labs/docsmith/internal/content"
	"github.com/sgx-labs/docsmith/internal/nav"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "docsmith",
		Short: "Content pipeline for markdown documentation sites",
		Long:  "docsmith — scans a markdown content tree, extracts metadata, and serves listings, navigation, and search.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(versionCmd())
	root.AddCommand(listCmd())
	root.AddCommand(showCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(navCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(mcpCmd())

	root.PersistentFlags().StringVar(&config.RootOverride, "root", "", "Content root directory (overrides config)")
	root.PersistentFlags().StringVar(&config.ConfigOverride, "config", "", "Path to docsmith.toml")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the docsmith version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("docsmith " + Version)
		},
	}
}

// buildIndex wires the configured content root and navigation source into a
// Library, shared by every subcommand.
func buildIndex() (*content.Library, *nav.Builder, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	lib := content.New(cfg.Content.Root,
		content.WithDefaultCategory(cfg.Content.DefaultCategory),
		content.WithExcludedFiles(cfg.Content.ExcludeFiles),
		content.WithLogger(log.Default()),
	)
	navb := nav.NewBuilder(cfg.Navigation.File, log.Default())
	return lib, navb, cfg, nil
}
