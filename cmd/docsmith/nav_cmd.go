package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/docsmith/internal/cli"
	"github.com/sgx-labs/docsmith/internal/nav"
)

func navCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Print the curated site navigation tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, navb, _, err := buildIndex()
			if err != nil {
				return err
			}

			groups := navb.Groups()
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(groups)
			}

			for _, g := range groups {
				fmt.Printf("%s%s%s  %s(%s)%s\n", cli.Bold, g.Category, cli.Reset, cli.Dim, g.CategorySlug, cli.Reset)
				printNavItems(g.Items, 1)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

func printNavItems(items []nav.Item, depth int) {
	for _, it := range items {
		marker := it.Slug
		if it.External {
			marker = "external"
		}
		for i := 0; i < depth; i++ {
			fmt.Print("  ")
		}
		fmt.Printf("%s  %s%s%s\n", it.Title, cli.Dim, marker, cli.Reset)
		printNavItems(it.Children, depth+1)
	}
}
