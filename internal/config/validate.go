package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if c.Storage.Driver == DriverPostgres && strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required for the postgres storage driver")
	}

	if c.RateLimit.SubmissionsPerMinute < 0 {
		return fmt.Errorf("rate_limit.submissions_per_minute must be >= 0 (got %d)", c.RateLimit.SubmissionsPerMinute)
	}
	if c.RateLimit.Enabled() && c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate_limit.burst must be >= 1 (got %d)", c.RateLimit.Burst)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (s StorageConfig) validate() error {
	switch s.Driver {
	case DriverMemory, DriverPostgres:
	case DriverFile, DriverBadger, DriverSQLite:
		if strings.TrimSpace(s.Path) == "" {
			return fmt.Errorf("path is required for the %s driver", s.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q (want memory, file, badger, sqlite or postgres)", s.Driver)
	}

	if strings.TrimSpace(s.FeedbackSlot) == "" || strings.TrimSpace(s.PulseSlot) == "" {
		return errors.New("slot names must not be empty")
	}
	if s.FeedbackSlot == s.PulseSlot {
		return fmt.Errorf("feedback_slot and pulse_slot must differ (both %q)", s.FeedbackSlot)
	}
	return nil
}
