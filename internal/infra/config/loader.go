// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the file looked up inside the config directory.
const ConfigFileName = "config.toml"

// Config is the resolved application configuration.
type Config struct {
	Backend BackendConfig `toml:"backend"`
	Log     LogConfig     `toml:"log"`
	UI      UIConfig      `toml:"ui"`
}

// BackendConfig selects and authenticates the REST backend.
type BackendConfig struct {
	URL            string `toml:"url"`
	Token          string `toml:"token"`
	UserID         string `toml:"user_id"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// LogConfig controls the log sinks.
type LogConfig struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
}

// UIConfig carries presentation defaults.
type UIConfig struct {
	DefaultCalendarColor string `toml:"default_calendar_color"`
	DefaultTaskColor     string `toml:"default_task_color"`
}

// NewDefaultConfig returns the built-in defaults: the local demo
// backend, a single-user id and the stock palette.
func NewDefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:            "http://localhost:8787",
			UserID:         "1",
			TimeoutSeconds: 30,
		},
		Log: LogConfig{Level: "info"},
		UI: UIConfig{
			DefaultCalendarColor: "#3788d8",
			DefaultTaskColor:     "#64748b",
		},
	}
}

// Loader loads configuration from a TOML file plus the environment.
// Precedence: defaults < file < environment.
type Loader struct {
	confDir string
}

// NewLoader creates a loader reading from the default config directory
// (XDG_CONFIG_HOME/kairos, falling back to ~/.config/kairos).
func NewLoader() *Loader {
	return &Loader{confDir: DefaultConfigDir()}
}

// NewLoaderWithDir creates a loader with a custom directory, for tests.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

// DefaultConfigDir resolves the per-user config directory.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "kairos")
}

// Path returns the config file location.
func (l *Loader) Path() string {
	return filepath.Join(l.confDir, ConfigFileName)
}

// Load returns the resolved configuration. A missing file is not an
// error; a malformed one is.
func (l *Loader) Load() (*Config, error) {
	// A local .env beats nothing but loses to the real environment,
	// which is godotenv's default behavior.
	_ = godotenv.Load()

	cfg := NewDefaultConfig()

	data, err := os.ReadFile(l.Path())
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults plus environment.
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("KAIROS_BACKEND_URL"); v != "" {
		cfg.Backend.URL = v
	}
	if v := os.Getenv("KAIROS_TOKEN"); v != "" {
		cfg.Backend.Token = v
	}
	if v := os.Getenv("KAIROS_USER_ID"); v != "" {
		cfg.Backend.UserID = v
	}
	if v := os.Getenv("KAIROS_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Backend.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("KAIROS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("KAIROS_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
}
