package config

const (
	defaultConfigPath    = "~/.config/remanifest/config.toml"
	projectConfigName    = "remanifest.toml"
	defaultManifestName  = "manifest.txt"
	defaultDelimiter     = "="
	defaultNormalization = "none"
	defaultOutputFormat  = "plain"
	defaultLockDir       = "~/.local/state/remanifest/locks"
	defaultLogFormat     = "console"
	defaultLogLevel      = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Manifest: Manifest{
			FileName:      defaultManifestName,
			Delimiter:     defaultDelimiter,
			Normalization: defaultNormalization,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Color:  true,
		},
		Lock: Lock{
			Enabled: false,
			Dir:     defaultLockDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
