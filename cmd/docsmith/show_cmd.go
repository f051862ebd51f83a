package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/docsmith/internal/cli"
	"github.com/sgx-labs/docsmith/internal/render"
)

func showCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "show [slug]",
		Short: "Show one document with its metadata and table of contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, _, _, err := buildIndex()
			if err != nil {
				return err
			}

			doc := lib.GetBySlug(args[0])
			if doc == nil {
				fmt.Fprintf(os.Stderr, "Not found: %s\n", args[0])
				os.Exit(1)
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(doc)
			}

			fmt.Printf("%s%s%s\n", cli.Bold, doc.Title, cli.Reset)
			fmt.Printf("%s%s · %s · %d min read · updated %s%s\n",
				cli.Dim, doc.Slug, doc.Category, doc.Metadata.ReadingTime, doc.Metadata.LastUpdated, cli.Reset)
			if doc.Description != "" {
				fmt.Printf("\n%s\n", doc.Description)
			}
			if len(doc.Tags) > 0 {
				fmt.Printf("\ntags: %s\n", strings.Join(doc.Tags, ", "))
			}
			if len(doc.TOC) > 0 {
				fmt.Println("\nContents:")
				printTOC(doc.TOC, 1)
			}
			if doc.Prev != "" {
				fmt.Printf("\nprev: %s\n", doc.Prev)
			}
			if doc.Next != "" {
				fmt.Printf("next: %s\n", doc.Next)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printTOC(entries []*render.Heading, depth int) {
	for _, e := range entries {
		fmt.Printf("%s%s\n", strings.Repeat("  ", depth), e.Title)
		printTOC(e.Children, depth+1)
	}
}
