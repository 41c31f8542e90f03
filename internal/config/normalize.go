package config

import "strings"

func (c *Config) normalize() {
	c.normalizeProject()
	c.normalizeChecks()
	c.normalizeLogging()
}

func (c *Config) normalizeProject() {
	// The root stays relative unless the user made it absolute: every
	// expected path in the tables is resolved against it, and relative
	// resolution from the invocation directory is the documented contract.
	c.Project.Root = strings.TrimSpace(c.Project.Root)
	if c.Project.Root == "" {
		c.Project.Root = defaultProjectRoot
	}
}

func (c *Config) normalizeChecks() {
	c.Checks.RequiredDirs = trimEach(c.Checks.RequiredDirs)
	c.Checks.RequiredFiles = trimEach(c.Checks.RequiredFiles)
	c.Checks.Notebooks = trimEach(c.Checks.Notebooks)
	c.Checks.DataLayers = trimEach(c.Checks.DataLayers)
	c.Checks.RequiredPackages = trimEach(c.Checks.RequiredPackages)

	c.Checks.RequirementsFile = strings.TrimSpace(c.Checks.RequirementsFile)
	if c.Checks.RequirementsFile == "" {
		c.Checks.RequirementsFile = defaultRequirementsFile
	}
	c.Checks.IgnoreFile = strings.TrimSpace(c.Checks.IgnoreFile)
	if c.Checks.IgnoreFile == "" {
		c.Checks.IgnoreFile = defaultIgnoreFile
	}
	// Ignore patterns are matched verbatim, whitespace included, so they
	// are deliberately not trimmed.
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func trimEach(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
