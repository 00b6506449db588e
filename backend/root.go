package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"pokedex-api/backend/config"
	"pokedex-api/backend/initialize"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the pokedex CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pokedex",
		Short:        "Pokédex catalog API with user favorites and decks",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "config/config.yaml", "config file path (empty to use environment only)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewSeedCmd())
	cmd.AddCommand(NewExportCmd())

	return cmd
}

// bootstrap loads configuration, builds the logger and wires the application.
func bootstrap(ctx context.Context) (*initialize.App, io.Closer, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	log, logCloser, err := initialize.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	app, err := initialize.Build(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("startup failed")
		_ = logCloser.Close()
		return nil, nil, err
	}
	return app, logCloser, nil
}
