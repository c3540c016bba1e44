package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nightcap/backend/internal/catalog"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load a catalog and report whether the API would accept it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := sourceFromFlags(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			recipes, err := catalog.Load(cmd.Context(), src)
			if err != nil {
				return fmt.Errorf("%s is invalid: %w", src, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d cocktails\n", src, len(recipes))
			for _, r := range recipes {
				fmt.Fprintf(out, "  %-20s %s\n", r.Slug, r.Name)
			}
			return nil
		},
	}
}
