package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeManifest()
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	if err := c.normalizeLock(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeManifest() {
	c.Manifest.FileName = strings.TrimSpace(c.Manifest.FileName)
	if c.Manifest.FileName == "" {
		c.Manifest.FileName = defaultManifestName
	}
	// The delimiter is taken verbatim; only an empty value falls back.
	if c.Manifest.Delimiter == "" {
		c.Manifest.Delimiter = defaultDelimiter
	}
	c.Manifest.Normalization = strings.ToLower(strings.TrimSpace(c.Manifest.Normalization))
	if c.Manifest.Normalization == "" {
		c.Manifest.Normalization = defaultNormalization
	}
}

func (c *Config) normalizeLock() error {
	if strings.TrimSpace(c.Lock.Dir) == "" {
		c.Lock.Dir = defaultLockDir
	}
	dir, err := expandPath(strings.TrimSpace(c.Lock.Dir))
	if err != nil {
		// An unused lock dir may stay unexpanded, e.g. when HOME is unset.
		if !c.Lock.Enabled {
			return nil
		}
		return fmt.Errorf("lock.dir: %w", err)
	}
	c.Lock.Dir = dir
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv("REMANIFEST_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if file := strings.TrimSpace(c.Logging.File); file != "" {
		expanded, err := expandPath(file)
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}
