package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateManifest(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateManifest() error {
	name := c.Manifest.FileName
	if name == "" {
		return errors.New("manifest.file_name must be set")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("manifest.file_name %q must be a plain file name", name)
	}
	if strings.ContainsAny(c.Manifest.Delimiter, "\r\n") {
		return errors.New("manifest.delimiter must not contain line breaks")
	}
	return ensureOneOf("manifest.normalization", c.Manifest.Normalization, "none", "nfc", "nfd")
}

func (c *Config) validateOutput() error {
	return ensureOneOf("output.format", c.Output.Format, "plain", "table", "json")
}

func (c *Config) validateLogging() error {
	if err := ensureOneOf("logging.format", c.Logging.Format, "console", "json"); err != nil {
		return err
	}
	return ensureOneOf("logging.level", c.Logging.Level, "debug", "info", "warn", "error")
}

func ensureOneOf(key, value string, allowed ...string) error {
	for _, candidate := range allowed {
		if value == candidate {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s (got %q)", key, strings.Join(allowed, ", "), value)
}
