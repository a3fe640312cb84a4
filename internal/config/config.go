// Package config loads tasktracker settings from defaults, an optional
// TOML file and TASKTRACKER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/pablasso/tasktracker/internal/storage"
	"golang.org/x/text/language"
)

const appName = "tasktracker"

// Default values
const (
	DefaultBackend   = string(storage.BackendFile)
	DefaultLocale    = "en"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the runtime settings.
type Config struct {
	DataDir   string `toml:"data_dir" env:"TASKTRACKER_DATA_DIR"`
	Backend   string `toml:"backend" env:"TASKTRACKER_BACKEND"`
	Locale    string `toml:"locale" env:"TASKTRACKER_LOCALE"`
	LogLevel  string `toml:"log_level" env:"TASKTRACKER_LOG_LEVEL"`
	LogFormat string `toml:"log_format" env:"TASKTRACKER_LOG_FORMAT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:   DefaultDataDir(),
		Backend:   DefaultBackend,
		Locale:    DefaultLocale,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// DefaultDataDir returns $XDG_DATA_HOME/tasktracker, falling back to
// ~/.local/share/tasktracker.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "." + appName
	}
	return filepath.Join(home, ".local", "share", appName)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/tasktracker/config.toml, or
// "" if no config directory can be determined.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, appName, "config.toml")
}

// Load builds the configuration. Values are layered: defaults, then the
// TOML file, then environment variables. An empty path means the default
// config path, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	return cfg, cfg.Validate()
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("data_dir is required")
	}
	if _, err := storage.ParseBackend(c.Backend); err != nil {
		return err
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log_format %q (want text, json or logfmt)", c.LogFormat)
	}
	return nil
}

// StorageBackend returns the parsed backend.
func (c Config) StorageBackend() storage.Backend {
	b, err := storage.ParseBackend(c.Backend)
	if err != nil {
		return storage.BackendFile
	}
	return b
}

// LocaleTag returns the parsed locale, falling back to English.
func (c Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// Overrides holds command-line values. Empty fields leave the loaded
// value in place.
type Overrides struct {
	DataDir  string
	Backend  string
	Locale   string
	LogLevel string
}

// Apply layers o on top of c and validates the result.
func (c Config) Apply(o Overrides) (Config, error) {
	if o.DataDir != "" {
		c.DataDir = expandHome(o.DataDir)
	}
	if o.Backend != "" {
		c.Backend = o.Backend
	}
	if o.Locale != "" {
		c.Locale = o.Locale
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	return c, c.Validate()
}

// Resolve loads the configuration from path and applies overrides.
func Resolve(path string, o Overrides) (Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	return cfg.Apply(o)
}
