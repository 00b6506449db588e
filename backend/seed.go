package main

import (
	"github.com/spf13/cobra"
)

type seedConfig struct {
	file string
}

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	cfg := &seedConfig{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the admin account and import the catalog",
		Long: `Creates the configured admin account and imports a JSON array of pokemons.
This command is idempotent - existing users and pokedex numbers are left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.file, "file", "", "catalog JSON file (defaults to seed.pokemons_file)")

	return cmd
}

func runSeed(cmd *cobra.Command, cfg *seedConfig) error {
	app, logCloser, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer logCloser.Close()
	defer app.Close()

	if cfg.file != "" {
		app.Cfg.Seed.PokemonsFile = cfg.file
	}
	if err := app.Seed(cmd.Context()); err != nil {
		return err
	}
	cmd.Println("seed complete")
	return nil
}
