package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nightcap/backend/internal/catalog"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded catalog to stdout as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, _ := cmd.Flags().GetString("format")

			src, err := sourceFromFlags(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			recipes, err := catalog.Load(cmd.Context(), src)
			if err != nil {
				return fmt.Errorf("%s is invalid: %w", src, err)
			}

			out := cmd.OutOrStdout()
			switch catalog.Format(format) {
			case catalog.FormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(recipes)
			case catalog.FormatYAML:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(recipes); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("%w: %q", catalog.ErrUnsupportedFormat, format)
			}
		},
	}

	cmd.Flags().StringP("format", "f", "json", "output format: json or yaml")
	return cmd
}
