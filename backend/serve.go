package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"pokedex-api/backend/config"
	"pokedex-api/backend/initialize"
	"pokedex-api/backend/server"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Connect to the store, migrate it, seed the admin account and the
catalog when configured, then serve the HTTP API until interrupted.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, logCloser, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	defer app.Close()

	if err := app.Seed(ctx); err != nil {
		app.Log.Warn().Err(err).Msg("seeding failed")
	}
	config.Watch(configFile, func(level string) {
		initialize.SetLevel(level)
		app.Log.Info().Str("level", level).Msg("log level reloaded")
	})

	return server.ServeHTTP(ctx, app.Cfg.HTTP.Addr(), app.Router, app.Log)
}
