// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Quadshift settings from defaults, YAML files,
// QUADSHIFT_* environment variables and command-line flags using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Cipher struct {
		// N and M stay nil when not configured; the CLI then prompts for them.
		N *int `mapstructure:"n" yaml:"n,omitempty"`
		M *int `mapstructure:"m" yaml:"m,omitempty"`
	} `mapstructure:"cipher" yaml:"cipher,omitempty"`
	Files struct {
		Input  string `mapstructure:"input" yaml:"input"`
		Output string `mapstructure:"output" yaml:"output"`
	} `mapstructure:"files" yaml:"files"`
	Language string `mapstructure:"language" yaml:"language"`
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	History  bool `mapstructure:"history" yaml:"history"`
	Parallel struct {
		Workers   int `mapstructure:"workers" yaml:"workers"`
		ChunkSize int `mapstructure:"chunk_size" yaml:"chunk_size"`
		Threshold int `mapstructure:"threshold" yaml:"threshold"`
	} `mapstructure:"parallel" yaml:"parallel"`
	Log struct {
		Level string `mapstructure:"level" yaml:"level"`
	} `mapstructure:"log" yaml:"log"`
}

// Defaults returns the built-in default values keyed by viper path.
func Defaults() map[string]any {
	return map[string]any{
		"files.input":         "raw_text.txt",
		"files.output":        "encrypted_text.txt",
		"language":            "en",
		"database.type":       "sqlite",
		"database.dsn":        "./quadshift.db",
		"history":             true,
		"parallel.workers":    0,
		"parallel.chunk_size": 64 << 10,
		"parallel.threshold":  1 << 20,
		"log.level":           "info",
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Quadshift")
		default: // Linux, macOS, etc.
			configDir = "/etc/quadshift"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "quadshift")
	}

	return filepath.Join(configDir, "quadshift.yaml"), nil
}

// LoadConfig layers defaults, the config file, environment and the flags of
// cmd (in increasing precedence) and decodes the result into T.
// A missing config file is reported as viper.ConfigFileNotFoundError together
// with the fully decoded defaults, so callers can continue.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("quadshift")
	v.SetConfigType("yaml")

	// 3. An explicit --config file has the highest precedence for file-based configuration.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	} else if isEmptyFile(v.ConfigFileUsed()) {
		// An empty file carries no settings; treat it like a missing one.
		notFound = viper.ConfigFileNotFoundError{}
	}

	// 5. Environment variables: QUADSHIFT_FILES_INPUT etc.
	v.SetEnvPrefix("quadshift")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(false)
	v.AutomaticEnv()
	// Keys without defaults are invisible to Unmarshal unless bound explicitly.
	_ = v.BindEnv("cipher.n")
	_ = v.BindEnv("cipher.m")

	// 6. Flags
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

func isEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Size() == 0
}

// WriteConfigFile writes c as YAML to the user (or system) config path.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}
	return WriteConfigFileTo(c, path)
}

// WriteConfigFileTo writes c as YAML to path, creating parent directories.
func WriteConfigFileTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the file may hold a database DSN with credentials.
	return os.WriteFile(path, data, 0600)
}
