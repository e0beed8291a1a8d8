package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// EnvPrefix is prepended to every environment override (RESTGET_LOG_LEVEL, ...)
	EnvPrefix = "RESTGET"
)

var (
	// ConfigDir is the global configuration directory (~/.restget)
	ConfigDir string

	// ConfigFile is the optional YAML configuration file
	ConfigFile string

	// LogFile is the default log destination
	LogFile string
)

// Config holds the effective settings, merged from defaults, config file,
// .env, environment and command-line flags (in increasing precedence).
type Config struct {
	LogLevel              string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile               string        `mapstructure:"log_file" yaml:"log_file"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-" yaml:"-"`
	UserAgent             string        `mapstructure:"user_agent" yaml:"user_agent"`
	InitialURL            string        `mapstructure:"initial_url" yaml:"initial_url"`

	// Keybinds maps context -> key -> action overrides. Read straight from
	// the YAML file: viper folds map keys to lower case and splits them on
	// dots, which would turn "G" into "g".
	Keybinds map[string]map[string]string `mapstructure:"-" yaml:"keybinds,omitempty"`
}

// flagKeys maps command-line flag names to config keys
var flagKeys = map[string]string{
	"log-level":  "log_level",
	"log-file":   "log_file",
	"timeout":    "request_timeout_seconds",
	"user-agent": "user_agent",
	"url":        "initial_url",
}

// Initialize sets up the configuration directory
// It creates ~/.restget/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".restget")
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	LogFile = filepath.Join(ConfigDir, "restget.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// Load reads the configuration. Initialize must have been called first.
// flags may be nil; only flags that were explicitly set override other sources.
func Load(version string, flags *pflag.FlagSet) (*Config, error) {
	if ConfigDir == "" {
		return nil, errors.New("config not initialized")
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", LogFile)
	v.SetDefault("request_timeout_seconds", 0) // no timeout
	v.SetDefault("user_agent", "restget/"+version)
	v.SetDefault("initial_url", "")

	v.SetConfigFile(ConfigFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("read config %s: %w", ConfigFile, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	keybinds, err := readKeybinds(ConfigFile)
	if err != nil {
		return nil, err
	}
	cfg.Keybinds = keybinds

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	return &cfg, nil
}

// Validate rejects settings the rest of the program cannot honor
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", c.LogLevel)
	}
	if c.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("invalid request_timeout_seconds (must be zero or positive seconds)")
	}
	return nil
}

// YAML renders the effective configuration
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// readKeybinds decodes the keybinds section of the config file with its
// keys exactly as written
func readKeybinds(path string) (map[string]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var file struct {
		Keybinds map[string]map[string]string `yaml:"keybinds"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse keybinds in %s: %w", path, err)
	}
	return file.Keybinds, nil
}

// isNotFound reports whether err means the optional config file is absent.
// viper returns an *fs.PathError rather than ConfigFileNotFoundError when
// SetConfigFile is used.
func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, os.ErrNotExist)
}
