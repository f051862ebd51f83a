package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/docsmith/internal/cli"
	"github.com/sgx-labs/docsmith/internal/content"
)

func listCmd() *cobra.Command {
	var (
		category string
		jsonOut  bool
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all documents in the corpus",
		Long: `List every eligible document as a summary.

Examples:
  docsmith list
  docsmith list --category design-pattern
  docsmith list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, _, _, err := buildIndex()
			if err != nil {
				return err
			}

			var sums []content.Summary
			if category != "" {
				sums = lib.ListByCategory(category)
			} else {
				sums = lib.ListAll()
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(sums)
			}

			if len(sums) == 0 {
				fmt.Println("No documents found.")
				return nil
			}
			for _, s := range sums {
				fmt.Printf("%s%s%s  %s%s%s\n", cli.Bold, s.Slug, cli.Reset, cli.Dim, s.Title, cli.Reset)
				if s.Description != "" {
					fmt.Printf("    %s\n", cli.Truncate(s.Description, 80))
				}
			}
			fmt.Printf("\n%d document(s)\n", len(sums))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
