package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/docsmith/internal/cli"
)

func searchCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search document titles and descriptions",
		Long: `Case-insensitive substring search over titles and descriptions.

Examples:
  docsmith search observer
  docsmith search "dependency injection" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			lib, _, _, err := buildIndex()
			if err != nil {
				return err
			}

			results := lib.Search(query)
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(results)
			}

			if len(results) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			for _, r := range results {
				fmt.Printf("%s%s%s  %s\n", cli.Bold, r.Slug, cli.Reset, r.Title)
				if r.Description != "" {
					fmt.Printf("    %s%s%s\n", cli.Dim, cli.Truncate(r.Description, 80), cli.Reset)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
