package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	validLogLevels    = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validLogFormats   = map[string]bool{"text": true, "json": true}
	validEnvironments = map[string]bool{
		EnvironmentDev:         true,
		EnvironmentDevelopment: true,
		EnvironmentStaging:     true,
		EnvironmentProduction:  true,
		EnvironmentTest:        true,
	}
)

// Validate checks that the loaded values are usable and reports every problem at once
func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.DataDir) == "" {
		problems = append(problems, "SCRIBBLE_DATA_DIR must not be empty")
	}
	if c.Port < MinPort || c.Port > MaxPort {
		problems = append(problems, fmt.Sprintf("PORT must be between %d and %d, got %d", MinPort, MaxPort, c.Port))
	}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if !validLogFormats[strings.ToLower(c.LogFormat)] {
		problems = append(problems, fmt.Sprintf("LOG_FORMAT %q is not one of text, json", c.LogFormat))
	}
	if !validEnvironments[c.Environment] {
		problems = append(problems, fmt.Sprintf("ENVIRONMENT %q is not recognised", c.Environment))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
