// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     config
// Description: Typed configuration for the mystring tools, loaded from TOML
//              or YAML with environment overrides
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mystring/foundation/core/error"
	"github.com/msto63/mystring/foundation/core/errors"
	"github.com/msto63/mystring/foundation/core/log"
	"github.com/msto63/mystring/foundation/utils/textvalue"
)

// Environment variables read by LoadFromEnv and applied on every load
const (
	EnvConfig   = "MYSTRING_CONFIG"
	EnvPolicy   = "MYSTRING_POLICY"
	EnvLogLevel = "MYSTRING_LOG_LEVEL"
)

// DotEnvFile is read by LoadFromEnv before the environment is consulted
const DotEnvFile = ".env"

// Format is the syntax of a configuration file
type Format int

const (
	// FormatTOML is the default format
	FormatTOML Format = iota
	FormatYAML
	// FormatAuto picks the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	TextValue TextValueConfig `toml:"textvalue" yaml:"textvalue"`
	Shell     ShellConfig     `toml:"shell" yaml:"shell"`

	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// TextValueConfig holds the settings applied to every text value
type TextValueConfig struct {
	Policy string `toml:"policy" yaml:"policy"`
}

// ShellConfig holds interactive shell settings
type ShellConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistorySize int    `toml:"history_size" yaml:"history_size"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if strings.TrimSpace(path) == "" {
		return nil, mdwerror.New("config file path cannot be empty").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Load")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read config file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", path)
	}

	cfg, err := parse(content, detectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse config file").
			WithDetail("filePath", path)
	}
	cfg.path = path

	return cfg.finish()
}

// LoadFromString loads configuration from a string with the given format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	cfg, err := parse([]byte(content), format)
	if err != nil {
		return nil, err
	}
	return cfg.finish()
}

// LoadFromEnv loads configuration from the MYSTRING_CONFIG environment variable.
// Without it the default locations are tried in order; if none exists the
// defaults are used. Variables from a .env file in the working directory are
// added first; they never override variables already set.
func LoadFromEnv() (*Config, error) {
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	if path := os.Getenv(EnvConfig); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default().finish()
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return mdwerror.Wrap(err, "failed to read env file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.loadDotEnv").
			WithDetail("filePath", path)
	}
	return nil
}

// DefaultPaths lists the locations LoadFromEnv searches
func DefaultPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./mystring.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mystring", "config.toml"))
	}
	return paths
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parse(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(&cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.parse").
				WithDetail("format", format.String())
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.parse").
				WithDetail("format", format.String())
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.parse").
			WithDetail("format", format.String())
	}

	return &cfg, nil
}

// finish applies defaults and environment overrides, then validates
func (c *Config) finish() (*Config, error) {
	c.applyDefaults()
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "mystring"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	if c.TextValue.Policy == "" {
		c.TextValue.Policy = textvalue.PolicyDefensive.String()
	}

	if c.Shell.Prompt == "" {
		c.Shell.Prompt = "mystring> "
	}
	if c.Shell.HistorySize == 0 {
		c.Shell.HistorySize = 100
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvPolicy); v != "" {
		c.TextValue.Policy = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
}

// Validate checks every setting that has a closed set of values
func (c *Config) Validate() error {
	if _, err := textvalue.ParsePolicy(c.TextValue.Policy); err != nil {
		return errors.ConfigInvalid("textvalue.policy", c.TextValue.Policy, "must be defensive or permissive")
	}
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return errors.ConfigInvalid("general.log_level", c.General.LogLevel, "must be trace, debug, info, warn, error or fatal")
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return errors.ConfigInvalid("general.log_format", c.General.LogFormat, "must be json, text, console or logfmt")
	}
	if c.Shell.HistorySize < 1 {
		return errors.ConfigInvalid("shell.history_size", c.Shell.HistorySize, "must be at least 1")
	}
	return nil
}

// Path returns the file the configuration was loaded from, empty for defaults
func (c *Config) Path() string {
	return c.path
}

// Policy returns the configured text value policy
func (c *Config) Policy() textvalue.Policy {
	p, _ := textvalue.ParsePolicy(c.TextValue.Policy)
	return p
}

// LogLevel returns the configured log level
func (c *Config) LogLevel() log.Level {
	l, _ := log.ParseLevel(c.General.LogLevel)
	return l
}

// LogFormat returns the configured log format
func (c *Config) LogFormat() log.Format {
	f, _ := log.ParseFormat(c.General.LogFormat)
	return f
}
