package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sgx-labs/docsmith/internal/cli"
	"github.com/sgx-labs/docsmith/internal/nav"
)

func validateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Cross-check navigation against the scanned corpus",
		Long: `Reports navigation entries pointing at missing documents, corpus
categories absent from navigation, and duplicate slugs. Divergence is
reported as warnings; --strict turns warnings into a non-zero exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, navb, _, err := buildIndex()
			if err != nil {
				return err
			}

			sums := lib.ListAll()
			warnings := nav.Validate(navb.Groups(), sums)

			seen := map[string]bool{}
			for _, s := range sums {
				if seen[s.Slug] {
					warnings = append(warnings, fmt.Sprintf("duplicate slug %q: later file wins in lookups", s.Slug))
				}
				seen[s.Slug] = true
			}

			if len(warnings) == 0 {
				fmt.Printf("%sOK%s — %d document(s), navigation consistent\n", cli.Green, cli.Reset, len(sums))
				return nil
			}
			for _, w := range warnings {
				cli.Warnf("%s", w)
			}
			fmt.Fprintf(os.Stderr, "\n%d warning(s)\n", len(warnings))
			if strict {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero on warnings")
	return cmd
}
