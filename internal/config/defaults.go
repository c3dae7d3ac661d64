package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	SevenZip SevenZipConfig `json:"seven_zip"`
	Scratch  ScratchConfig  `json:"scratch"`
	Logging  LoggingConfig  `json:"logging"`
}

type SevenZipConfig struct {
	// BinaryPath is an explicit path to the 7-Zip executable.
	// Empty means probe PATH for the known executable names.
	BinaryPath string `json:"binary_path"`

	// DefaultFormat is the archive type used by create when the caller
	// gives none. Default: "zip"
	DefaultFormat string `json:"default_format"`
}

type ScratchConfig struct {
	// Root is where per-invocation scratch directories are created.
	// Empty means the system temp directory.
	Root string `json:"root"`
}

type LoggingConfig struct {
	// Level is a zap level name: debug, info, warn, error. Default: "info"
	Level string `json:"level"`

	// Development switches to zap's human-oriented console output.
	Development bool `json:"development"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SevenZip: SevenZipConfig{
			BinaryPath:    "",
			DefaultFormat: "zip",
		},
		Scratch: ScratchConfig{
			Root: "",
		},
		Logging: LoggingConfig{
			Level:       "info",
			Development: false,
		},
	}
}
