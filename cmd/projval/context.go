package main

import (
	"strings"
	"sync"

	"github.com/KingGeorgeIII/ecommerce-retention-predictor/internal/config"
)

type commandContext struct {
	configFlag *string
	rootFlag   *string
	strictFlag *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, rootFlag *string, strictFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		rootFlag:   rootFlag,
		strictFlag: strictFlag,
	}
}

// ensureConfig loads the configuration once and layers the CLI flag
// overrides on top of it.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.rootFlag != nil && strings.TrimSpace(*c.rootFlag) != "" {
			cfg.Project.Root = strings.TrimSpace(*c.rootFlag)
		}
		if c.strictFlag != nil && *c.strictFlag {
			cfg.Checks.Strict = true
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}
