package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix for environment overrides (SITE_DATA_PATH -> data_path)
const EnvPrefix = "SITE_"

// DefaultFile is the optional YAML config file read by the binaries
const DefaultFile = "site.yml"

// Config holds all application configuration. An empty LogLevel defers
// to LOG_LEVEL, then info.
type Config struct {
	ServerAddr string `koanf:"server_addr"`
	SiteRoot   string `koanf:"site_root"`
	DataPath   string `koanf:"data_path"`
	OutputDir  string `koanf:"output_dir"`
	SiteName   string `koanf:"site_name"`
	LogLevel   string `koanf:"log_level"`
	Workers    int    `koanf:"workers"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		ServerAddr: ":8000",
		SiteRoot:   ".",
		DataPath:   "data/projects.json",
		OutputDir:  "projects",
		SiteName:   "Danny Elizur",
		LogLevel:   "",
		Workers:    4,
	}
}

// Load reads the optional .env file and YAML config at path, then overlays
// SITE_* environment variables on top of the defaults
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return fmt.Errorf("data_path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.SiteRoot == "" {
		return fmt.Errorf("site_root is required")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative")
	}
	return nil
}
