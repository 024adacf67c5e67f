// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the optional YAML configuration file of the shell.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/msh/internal/ctxlog"
	"github.com/matt-FFFFFF/msh/internal/fsys"
	"github.com/spf13/afero"
)

// DefaultPrompt is printed before every interactive line.
const DefaultPrompt = "msh> "

var (
	// ErrReadFile is returned when the config file cannot be read.
	ErrReadFile = errors.New("failed to read config file")
	// ErrInvalidYaml is returned when the config file is not valid YAML.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds the shell settings.
type Config struct {
	Prompt      string `yaml:"prompt"`       // Interactive prompt.
	HistoryFile string `yaml:"history_file"` // Interactive history is loaded from and saved to this file, empty disables it.
	LogLevel    string `yaml:"log_level"`    // One of DEBUG, INFO, WARN, ERROR. Empty keeps MSH_LOG_LEVEL.
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Prompt: DefaultPrompt,
	}
}

// Load reads the config file at path. An empty path yields Default.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fsys.FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYaml, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Prompt == "" {
		result = multierror.Append(result, fmt.Errorf("%w: prompt must not be empty", ErrInvalidConfig))
	}

	if strings.ContainsAny(c.Prompt, "\r\n") {
		result = multierror.Append(result, fmt.Errorf("%w: prompt must be a single line", ErrInvalidConfig))
	}

	if !ctxlog.ValidLevel(c.LogLevel) {
		result = multierror.Append(result, fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel))
	}

	return result.ErrorOrNil()
}

// HistoryPath returns HistoryFile with a leading ~/ replaced by the home directory.
func (c *Config) HistoryPath() string {
	if !strings.HasPrefix(c.HistoryFile, "~/") {
		return c.HistoryFile
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}

	return filepath.Join(home, c.HistoryFile[2:])
}
