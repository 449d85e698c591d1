package commands

import (
	"fmt"
	"path/filepath"

	"github.com/finboard-dev/finboard/internal/categories"
	"github.com/finboard-dev/finboard/internal/config"
)

// configFile is the config file name inside a data directory.
const configFile = "finboard.yaml"

// loadConfig reads <dataDir>/finboard.yaml, falling back to defaults when
// the file is absent.
func loadConfig(dataDir string) *config.Config {
	cfg, err := config.Load(filepath.Join(dataDir, configFile))
	if err != nil {
		return config.Default(dataDir)
	}
	return cfg
}

// openStore opens the category store for the configured backend. The
// returned close function releases the sqlite handle when that backend is
// selected.
func openStore(cfg *config.Config) (*categories.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		backend, err := categories.NewSQLiteBackend(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return categories.NewStore(backend, cfg.Categories.Extra...), backend.Close, nil
	case config.BackendFile, "":
		backend := categories.NewFileBackend(cfg.Storage.MappingPath)
		return categories.NewStore(backend, cfg.Categories.Extra...), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
