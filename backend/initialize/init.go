package initialize

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"pokedex-api/backend/app/cache"
	"pokedex-api/backend/app/controllers"
	"pokedex-api/backend/app/db"
	jwtutil "pokedex-api/backend/app/jwt"
	"pokedex-api/backend/app/middleware"
	"pokedex-api/backend/app/repo"
	"pokedex-api/backend/app/services"
	"pokedex-api/backend/config"
	"pokedex-api/backend/router"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Log      zerolog.Logger
	Router   http.Handler
	Users    *services.UserService
	Pokemons *services.PokemonService
	closers  []func() error
}

// Build connects the store, migrates it and wires services and routes. A store
// connection failure is returned to the caller, which exits.
func Build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	// Connect DB
	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	return BuildWithDB(ctx, cfg, gdb, log)
}

// BuildWithDB is Build over an already opened store.
func BuildWithDB(ctx context.Context, cfg *config.Config, gdb *gorm.DB, log zerolog.Logger) (*App, error) {
	app := &App{Cfg: cfg, DB: gdb, Log: log}
	if sqlDB, err := gdb.DB(); err == nil {
		app.closers = append(app.closers, sqlDB.Close)
	}

	// Migrate
	if err := db.Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var catalogCache cache.Cache = cache.Nop{}
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB, TTL: cfg.Redis.TTL, Prefix: "pokedex:",
		})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, catalog cache disabled")
		} else {
			catalogCache = cache.NewBreaker(rc, log)
			app.closers = append(app.closers, rc.Close)
		}
	}

	// Services
	userRepo := repo.NewUserRepository(gdb)
	pokemonRepo := repo.NewPokemonRepository(gdb)
	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, TTL: cfg.JWT.TTL}
	app.Users = services.NewUserService(userRepo, signer, log)
	app.Pokemons = services.NewPokemonService(pokemonRepo, catalogCache, log)
	collections := services.NewCollectionService(userRepo, log)

	// Controllers
	ctrls := router.Controllers{
		HTTP:        controllers.NewHTTPController(gdb),
		Auth:        controllers.NewAuthController(app.Users, log),
		Admin:       controllers.NewAdminController(log),
		Collections: controllers.NewCollectionController(collections, log),
		Pokemons:    controllers.NewPokemonController(app.Pokemons, log),
	}
	mw := &middleware.Auth{Signer: signer, Log: log}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Router
	app.Router = router.NewRouter(ctrls, mw, router.Options{
		AssetsDir: cfg.HTTP.AssetsDir,
		Gatherer:  reg,
		Metrics:   middleware.NewMetrics(reg),
		Log:       log,
	})
	return app, nil
}

// Seed creates the admin account when a password is configured and imports the
// catalog file when one is configured.
func (a *App) Seed(ctx context.Context) error {
	if a.Cfg.Seed.AdminPassword != "" {
		if err := a.Users.EnsureAdmin(ctx, a.Cfg.Seed.AdminUsername, a.Cfg.Seed.AdminPassword); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}
	if a.Cfg.Seed.PokemonsFile != "" {
		if _, err := ImportCatalog(ctx, a.Pokemons, a.Cfg.Seed.PokemonsFile); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}
	return nil
}

func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
