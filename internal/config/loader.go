package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path != "" {
		return LoadFile(path)
	}
	return load("./config.yaml", false)
}

// LoadFile is Load with an explicit YAML path that must exist.
func LoadFile(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, explicit bool) (*Config, error) {
	cfg := presets()

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// presets returns the booleans that default to true. cleanenv cannot
// express them as env-default: it treats false as unset and would
// reapply the default over an explicit "false" in YAML.
func presets() Config {
	return Config{
		Storage: StorageConfig{
			SyncWrites:   true,
			Watch:        true,
			PatternCache: true,
		},
		Database: DatabaseConfig{AutoMigrate: true},
		Metrics:  MetricsConfig{Enabled: true},
	}
}
