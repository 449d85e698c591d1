package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config represents the top-level finboard.yaml configuration.
type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Report     ReportConfig     `yaml:"report"`
	Categories CategoriesConfig `yaml:"categories"`
}

// StorageConfig selects where the vendor→category mapping lives.
type StorageConfig struct {
	Backend     string `yaml:"backend"` // "file" or "sqlite"
	MappingPath string `yaml:"mapping_path"`
	SQLitePath  string `yaml:"sqlite_path"`
}

// ReportConfig holds report defaults.
type ReportConfig struct {
	TopVendors  int    `yaml:"top_vendors"`
	Granularity string `yaml:"granularity"` // daily, monthly, yearly
}

// CategoriesConfig extends the built-in default category list.
type CategoriesConfig struct {
	Extra []string `yaml:"extra,omitempty"`
}

// Load reads a finboard.yaml file from disk. FINBOARD_* environment
// variables override the storage settings after parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults rooted at dataDir.
func Default(dataDir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:     BackendFile,
			MappingPath: filepath.Join(dataDir, "categories.json"),
			SQLitePath:  filepath.Join(dataDir, "finboard.db"),
		},
		Report: ReportConfig{
			TopVendors:  10,
			Granularity: "daily",
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FINBOARD_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("FINBOARD_MAPPING_PATH"); v != "" {
		c.Storage.MappingPath = v
	}
	if v := os.Getenv("FINBOARD_SQLITE_PATH"); v != "" {
		c.Storage.SQLitePath = v
	}
}
