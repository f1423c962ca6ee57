package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"remanifest/internal/config"
	"remanifest/internal/logging"
)

type overrideFlags struct {
	output   string
	logLevel string
	noColor  bool
}

type commandContext struct {
	configFlag *string
	overrides  *overrideFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag *string, overrides *overrideFlags) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		overrides:  overrides,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := c.applyOverrides(cfg); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// applyOverrides folds command-line flags over the loaded config and
// re-validates the result.
func (c *commandContext) applyOverrides(cfg *config.Config) error {
	if c.overrides == nil {
		return nil
	}
	if value := strings.ToLower(strings.TrimSpace(c.overrides.output)); value != "" {
		cfg.Output.Format = value
	}
	if value := strings.ToLower(strings.TrimSpace(c.overrides.logLevel)); value != "" {
		cfg.Logging.Level = value
	}
	if c.overrides.noColor {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return logger, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
