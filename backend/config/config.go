package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	ErrMissingDSN    = errors.New("db.dsn is required")
	ErrMissingSecret = errors.New("jwt.secret is required")
)

type HTTP struct {
	Host      string
	Port      int
	AssetsDir string
}

func (h HTTP) Addr() string { return fmt.Sprintf("%s:%d", h.Host, h.Port) }

type DB struct {
	Driver string
	DSN    string
}

type JWT struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Log struct {
	Level  string
	Format string
	Path   string
}

type Seed struct {
	AdminUsername string
	AdminPassword string
	PokemonsFile  string
}

type Config struct {
	HTTP  HTTP
	DB    DB
	JWT   JWT
	Redis Redis
	Log   Log
	Seed  Seed
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	}
	v.SetEnvPrefix("POKEDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 3000)
	v.SetDefault("http.assets_dir", "")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "pokedex-api")
	v.SetDefault("jwt.ttl", time.Hour)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.path", "")
	v.SetDefault("seed.admin_username", "admin")
	v.SetDefault("seed.admin_password", "")
	v.SetDefault("seed.pokemons_file", "")
	return v
}

// Load reads the YAML file at path (optional when empty) and applies POKEDEX_*
// environment overrides. The store DSN and the signing secret are required.
func Load(path string) (*Config, error) {
	v := newViper(path)
	if path != "" {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port"), AssetsDir: v.GetString("http.assets_dir")},
		DB:   DB{Driver: v.GetString("db.driver"), DSN: v.GetString("db.dsn")},
		JWT:  JWT{Secret: v.GetString("jwt.secret"), Issuer: v.GetString("jwt.issuer"), TTL: v.GetDuration("jwt.ttl")},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			TTL:      v.GetDuration("redis.ttl"),
		},
		Log: Log{Level: v.GetString("log.level"), Format: v.GetString("log.format"), Path: v.GetString("log.path")},
		Seed: Seed{
			AdminUsername: v.GetString("seed.admin_username"),
			AdminPassword: v.GetString("seed.admin_password"),
			PokemonsFile:  v.GetString("seed.pokemons_file"),
		},
	}
	if cfg.DB.DSN == "" {
		return nil, ErrMissingDSN
	}
	if cfg.JWT.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = time.Hour
	}
	return cfg, nil
}

// Watch calls onLevel with the new log.level whenever the file at path changes.
// Other keys are read once at startup.
func Watch(path string, onLevel func(level string)) {
	if path == "" {
		return
	}
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if e.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			return
		}
		onLevel(v.GetString("log.level"))
	})
	v.WatchConfig()
}
