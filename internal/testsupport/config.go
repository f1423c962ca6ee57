// Package testsupport provides fixtures shared by package tests: temp-dir
// backed configs and helpers for writing manifests and inspecting directories.
package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"remanifest/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Lock.Dir = filepath.Join(base, "locks")
	cfgVal.Output.Color = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLock enables the directory lock, with lock files under the config's
// temp directory.
func WithLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Lock.Enabled = true
	}
}

// WithLogFile routes logs to a file under the config's temp directory.
func WithLogFile() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, "logs", "remanifest.log")
	}
}

// WithOutputFormat overrides the output format.
func WithOutputFormat(format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Format = format
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Lock.Dir)
}

// WriteConfig encodes cfg as TOML at path.
func WriteConfig(t testing.TB, cfg *config.Config, path string) {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	WriteFile(t, path, string(data))
}
