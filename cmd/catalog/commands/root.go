// Package commands implements the catalog CLI commands.
package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nightcap/backend/config"
	"github.com/nightcap/backend/internal/catalog"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate cocktail catalogs",
		Long: `Catalog loads a cocktail catalog the same way the API does at startup.

Without flags the catalog embedded in the binary is used.

Examples:
  # Check a local catalog before pointing CATALOG_PATH at it
  catalog validate --path cocktails.yaml

  # Check the catalog stored in S3
  catalog validate --s3-bucket my-bucket --s3-key catalog/cocktails.json

  # Start a new YAML catalog from the built-in one
  catalog export --format yaml > cocktails.yaml`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("path", "", "catalog file (.json, .yaml or .yml)")
	cmd.PersistentFlags().String("s3-bucket", "", "S3 bucket holding the catalog")
	cmd.PersistentFlags().String("s3-key", "", "object key of the catalog in the bucket")

	cmd.AddCommand(newValidateCmd(), newExportCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// sourceFromFlags resolves the catalog source selected on the command line
func sourceFromFlags(ctx context.Context, cmd *cobra.Command) (catalog.Source, error) {
	path, _ := cmd.Flags().GetString("path")
	bucket, _ := cmd.Flags().GetString("s3-bucket")
	key, _ := cmd.Flags().GetString("s3-key")

	if bucket == "" && key == "" {
		return catalog.Source{Path: path}, nil
	}
	if bucket == "" || key == "" {
		return catalog.Source{}, fmt.Errorf("--s3-bucket and --s3-key must be set together")
	}
	if path != "" {
		return catalog.Source{}, fmt.Errorf("--path cannot be combined with --s3-bucket")
	}

	objects, err := config.NewS3Config(ctx, bucket)
	if err != nil {
		return catalog.Source{}, err
	}
	return catalog.Source{ObjectKey: key, Objects: objects}, nil
}
