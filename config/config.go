// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	PreviousClamp  = "clamp"
	PreviousLegacy = "legacy"
)

type Config struct {
	Language   string     `mapstructure:"language" yaml:"language"`
	Fields     Fields     `mapstructure:"fields" yaml:"fields"`
	Navigation Navigation `mapstructure:"navigation" yaml:"navigation"`
	Keyboard   Keyboard   `mapstructure:"keyboard" yaml:"keyboard"`
	Log        Log        `mapstructure:"log" yaml:"log"`
}

type Fields struct {
	Count int `mapstructure:"count" yaml:"count"`
}

type Navigation struct {
	// Previous is "clamp" or "legacy".
	Previous string `mapstructure:"previous" yaml:"previous"`
}

type Keyboard struct {
	// Types overrides the keyboard of single fields, e.g. {"0": "email"}.
	Types map[string]string `mapstructure:"types" yaml:"types,omitempty"`
}

type Log struct {
	File  string `mapstructure:"file" yaml:"file,omitempty"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Defaults returns the built-in settings in the flat form viper expects.
func Defaults() map[string]any {
	return map[string]any{
		"language":            "en",
		"fields.count":        10,
		"navigation.previous": PreviousClamp,
		"log.level":           "info",
	}
}

// Default returns a Config holding the built-in settings.
func Default() Config {
	return Config{
		Language:   "en",
		Fields:     Fields{Count: 10},
		Navigation: Navigation{Previous: PreviousClamp},
		Log:        Log{Level: "info"},
	}
}

// Validate checks the values LoadConfig cannot check on its own.
func (c Config) Validate() error {
	var errs []error
	if c.Fields.Count < 1 {
		errs = append(errs, fmt.Errorf("fields.count must be at least 1, got %d", c.Fields.Count))
	}
	switch c.Navigation.Previous {
	case PreviousClamp, PreviousLegacy:
	default:
		errs = append(errs, fmt.Errorf("navigation.previous must be %q or %q, got %q", PreviousClamp, PreviousLegacy, c.Navigation.Previous))
	}
	return errors.Join(errs...)
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		// System-wide configuration paths
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keynav")
		default: // Linux, macOS, etc.
			configDir = "/etc/keynav"
		}
	} else {
		// User-specific configuration paths
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "keynav")
	}

	return filepath.Join(configDir, "keynav.yaml"), nil
}

// LoadConfig resolves settings from, in rising precedence: defaults, the
// standard config locations, an explicit config file, KEYNAV_* environment
// variables and the flags of cmd that were bound by name.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("keynav")
	v.SetConfigType("yaml")

	// An explicit path wins over the search paths below. A missing or empty
	// explicit file is reported, but c still carries defaults, env and flags.
	var explicitErr error
	if additionalConfigFilePath != nil && *additionalConfigFilePath != "" {
		if info, err := os.Stat(*additionalConfigFilePath); err != nil || info.Size() == 0 {
			explicitErr = viper.ConfigFileNotFoundError{}
		} else {
			v.SetConfigFile(*additionalConfigFilePath)
		}
	}

	if explicitErr == nil {
		if userConfigPath, err := GetConfigPath(false); err == nil {
			v.AddConfigPath(filepath.Dir(userConfigPath))
		}
		if systemConfigPath, err := GetConfigPath(true); err == nil {
			v.AddConfigPath(filepath.Dir(systemConfigPath))
		}
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			// It's okay if the file is not found, but other errors are fatal.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return c, err
			}
		}
	}

	v.SetEnvPrefix("keynav")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, flag := range flagBindings {
			if f := cmd.Flags().Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return c, err
				}
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, explicitErr
}

// flagBindings maps config keys to the cobra flags that override them.
var flagBindings = map[string]string{
	"language":            "lang",
	"fields.count":        "fields",
	"navigation.previous": "previous",
	"log.file":            "log-file",
	"log.level":           "log-level",
}

func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}

	return path, nil
}
