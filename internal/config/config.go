package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete Soloist configuration
type Config struct {
	Instance InstanceConfig `mapstructure:"instance"`
	Listen   ListenConfig   `mapstructure:"listen"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Shell    ShellConfig    `mapstructure:"shell"`
	Editor   EditorConfig   `mapstructure:"editor"`
}

// InstanceConfig controls how the instance identifies itself for coordination
type InstanceConfig struct {
	// Name is the application name embedded in the coordination address.
	// Processes only coordinate with processes using the same name.
	Name string `mapstructure:"name"`
	// Group partitions instances further: each group gets its own primary.
	// Empty means the default group.
	Group string `mapstructure:"group"`
}

// ListenConfig controls the optional extra listener the primary opens
type ListenConfig struct {
	// Spec is an address in "unix:/path", "unix:@name", "tcp:host:port" or
	// "tcp6:host:port" form. Empty disables the extra listener.
	Spec string `mapstructure:"spec"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path. Empty logs to stderr.
	File string `mapstructure:"file"`
}

// ShellConfig controls how the user's shell is located and interrogated
type ShellConfig struct {
	// Command is the shell to use. "." (default) defers to $SHELL.
	Command string `mapstructure:"command"`
	// EnvTimeoutMs bounds how long to wait for the login shell to print
	// its environment (default: 1500)
	EnvTimeoutMs int `mapstructure:"env_timeout_ms"`
}

// EditorConfig controls which editor `soloist edit` launches
type EditorConfig struct {
	// Command overrides VISUAL/EDITOR resolution when set. May carry
	// arguments, e.g. "code --wait".
	Command string `mapstructure:"command"`
}

// EnvTimeout returns the shell environment capture timeout as a time.Duration
func (s *ShellConfig) EnvTimeout() time.Duration {
	return time.Duration(s.EnvTimeoutMs) * time.Millisecond
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Instance: InstanceConfig{
			Name:  "soloist",
			Group: "",
		},
		Listen: ListenConfig{
			Spec: "",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			File:    "",
		},
		Shell: ShellConfig{
			Command:      ".",
			EnvTimeoutMs: 1500,
		},
		Editor: EditorConfig{
			Command: "",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Instance defaults
	viper.SetDefault("instance.name", defaults.Instance.Name)
	viper.SetDefault("instance.group", defaults.Instance.Group)

	// Listen defaults
	viper.SetDefault("listen.spec", defaults.Listen.Spec)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)

	// Shell defaults
	viper.SetDefault("shell.command", defaults.Shell.Command)
	viper.SetDefault("shell.env_timeout_ms", defaults.Shell.EnvTimeoutMs)

	// Editor defaults
	viper.SetDefault("editor.command", defaults.Editor.Command)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "soloist")
	}
	// Fall back to ~/.config/soloist
	home, err := os.UserHomeDir()
	if err != nil {
		return ".soloist"
	}
	return filepath.Join(home, ".config", "soloist")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
