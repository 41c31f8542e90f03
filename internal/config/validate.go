package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateChecks(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateChecks() error {
	if len(c.Checks.RequiredDirs) == 0 {
		return errors.New("checks.required_dirs must not be empty")
	}
	if len(c.Checks.RequiredFiles) == 0 {
		return errors.New("checks.required_files must not be empty")
	}
	if len(c.Checks.Notebooks) == 0 {
		return errors.New("checks.notebooks must not be empty")
	}
	if len(c.Checks.DataLayers) == 0 {
		return errors.New("checks.data_layers must not be empty")
	}
	if len(c.Checks.RequiredPackages) == 0 {
		return errors.New("checks.required_packages must not be empty")
	}
	if len(c.Checks.IgnorePatterns) == 0 {
		return errors.New("checks.ignore_patterns must not be empty")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
