package config

import (
	"fmt"
	"log/slog"
	"strings"
)

var validOutputs = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !isValidOutput(c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected one of: %s)",
			c.OutputFormat, strings.Join(validOutputs, ", "))
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// Level returns the configured log level. Verbose forces debug.
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func isValidOutput(s string) bool {
	for _, v := range validOutputs {
		if s == v {
			return true
		}
	}
	return false
}
