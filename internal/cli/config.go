package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/livalex/egraph/pkg/errors"
	"github.com/livalex/egraph/pkg/store"
)

// Config holds the CLI configuration loaded from the TOML config file.
// Every field has a usable default; a missing config file is not an error.
type Config struct {
	Store StoreConfig `toml:"store"`
	Serve ServeConfig `toml:"serve"`
}

// StoreConfig selects and configures the graph store backend.
type StoreConfig struct {
	Backend string      `toml:"backend"` // file, redis, or mongo
	Path    string      `toml:"path"`    // file backend directory
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// RedisConfig mirrors store.RedisConfig for TOML decoding.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig mirrors store.MongoConfig for TOML decoding.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServeConfig configures the HTTP API server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend: "file",
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo:   MongoConfig{URI: "mongodb://localhost:27017"},
		},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// loadConfig reads the TOML config at path. An empty path defaults to
// ~/.config/egraph/config.toml; a missing file yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil // no home dir, run with defaults
		}
		path = filepath.Join(home, ".config", "egraph", "config.toml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}

	switch cfg.Store.Backend {
	case "file", "redis", "mongo":
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"unknown store backend %q (available: file, redis, mongo)", cfg.Store.Backend)
	}
	return cfg, nil
}

// openStore creates the store selected by the configuration.
func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.Store.Backend {
	case "redis":
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.Store.Mongo.URI,
			Database:   cfg.Store.Mongo.Database,
			Collection: cfg.Store.Mongo.Collection,
		})
	default:
		return store.NewFileStore(cfg.Store.Path)
	}
}
