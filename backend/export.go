package main

import (
	"github.com/spf13/cobra"

	"pokedex-api/backend/initialize"
)

// NewExportCmd creates the export subcommand.
func NewExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog to a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, logCloser, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer logCloser.Close()
			defer app.Close()

			n, err := initialize.ExportCatalog(cmd.Context(), app.Pokemons, out)
			if err != nil {
				return err
			}
			cmd.Printf("exported %d pokemons to %s\n", n, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "pokemons.json", "output file")

	return cmd
}
