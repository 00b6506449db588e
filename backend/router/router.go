package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"pokedex-api/backend/app/controllers"
	"pokedex-api/backend/app/middleware"
)

type Controllers struct {
	HTTP        *controllers.HTTPController
	Auth        *controllers.AuthController
	Admin       *controllers.AdminController
	Collections *controllers.CollectionController
	Pokemons    *controllers.PokemonController
}

type Options struct {
	// AssetsDir is served under /assets when set.
	AssetsDir string
	// Gatherer backs /metrics; nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
	Metrics  *middleware.Metrics
	Log      zerolog.Logger
}

func NewRouter(c Controllers, mw *middleware.Auth, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(opts.Log))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Instrument)
	}

	r.Get("/", c.HTTP.Welcome)
	r.Get("/healthz", c.HTTP.Health)
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	if opts.AssetsDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(opts.AssetsDir))))
	}

	r.Route("/api", func(api chi.Router) {
		// public
		api.Post("/register", c.Auth.Register)
		api.Post("/login", c.Auth.Login)
		api.Get("/favorites/{username}", c.Collections.Favorites)
		api.Delete("/favorites/{username}/{pokemonId}", c.Collections.RemoveFavorite)
		api.Get("/pokemons", c.Pokemons.List)
		api.Get("/pokemons/{id}", c.Pokemons.Get)

		// bearer token required
		api.Group(func(auth chi.Router) {
			auth.Use(mw.RequireAuth)
			auth.Get("/protected", c.Auth.Protected)
			auth.Get("/admin", c.Admin.Dashboard)

			auth.Post("/favorites/add", c.Collections.AddFavorite)
			auth.Post("/addDeck", c.Collections.AddToDeck)
			auth.Get("/monDeck/{username}", c.Collections.Deck)
			auth.Delete("/monDeck/{pokemonId}", c.Collections.RemoveFromDeck)

			auth.Post("/pokemons", c.Pokemons.Create)
			auth.Put("/pokemons/{id}", c.Pokemons.Update)
			auth.Delete("/pokemons/{id}", c.Pokemons.Delete)
		})
	})

	return r
}
