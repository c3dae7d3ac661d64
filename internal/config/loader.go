package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "soarzip"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
)

// Environment variables that override the merged file configuration.
const (
	EnvBinaryPath  = "SOARZIP_7Z_PATH"
	EnvScratchRoot = "SOARZIP_SCRATCH_DIR"
	EnvLogLevel    = "SOARZIP_LOG_LEVEL"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs        FileSystem
	lookupEnv func(string) (string, bool)
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}, lookupEnv: os.LookupEnv}
}

// NewLoaderWithFS creates a Loader with custom seams (for testing)
func NewLoaderWithFS(fs FileSystem, lookupEnv func(string) (string, bool)) *Loader {
	return &Loader{fs: fs, lookupEnv: lookupEnv}
}

// Load reads configuration from ~/.config/soarzip/config.json
// and merges it with defaults, then applies environment overrides.
// Returns default config if dotfile doesn't exist.
// Returns error only for parse errors, permission issues, or validation failures.
//
// NOTE: This implementation unmarshals JSON keys directly over the default configuration.
// This allows explicit zero values (e.g., 0, false, "") in the config file to override defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	// Missing home dir or missing dotfile both fall through to
	// defaults-plus-environment; only read and parse failures are errors.
	if homeDir, err := l.fs.UserHomeDir(); err == nil {
		configPath := filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)

		data, err := l.fs.ReadFile(configPath)
		switch {
		case err == nil:
			// Parse JSON directly into the default config struct.
			// This ensures that present keys overwrite defaults (even if zero),
			// while missing keys leave the defaults untouched.
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err // Return error for malformed JSON
			}
		case !os.IsNotExist(err):
			return nil, err // Return error for permission issues
		}
	}

	l.applyEnv(cfg)

	// Validate the merged configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv applies environment variable overrides on top of the merged
// configuration. Environment wins over file and defaults.
func (l *Loader) applyEnv(cfg *Config) {
	if v, ok := l.lookupEnv(EnvBinaryPath); ok {
		cfg.SevenZip.BinaryPath = v
	}
	if v, ok := l.lookupEnv(EnvScratchRoot); ok {
		cfg.Scratch.Root = v
	}
	if v, ok := l.lookupEnv(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
