// Package config resolves fac-cli configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	clierrors "github.com/foundersandcoders/fac-cli/internal/errors"
)

// Environment variable names recognized by the CLI.
const (
	EnvAPIKey  = "AIRTABLE_API_KEY"
	EnvViewURL = "AIRTABLE_VIEW_URL"
	EnvColumns = "GR_COLUMNS"
	EnvHeaders = "GR_HEADERS"
	EnvDebug   = "FAC_CLI_DEBUG"
	EnvColor   = "FAC_COLOR"
)

// Defaults for the optional keys.
const (
	DefaultColumns = "Name,Email,Status,Date"
	DefaultHeaders = "Student Name,Email Address,Current Status,Last Updated"
)

const envFileName = ".env"

const credentialsSuggestion = "Copy .env.example to .env and add your Airtable credentials"

// Config is the immutable per-invocation configuration. It is built once by
// Validate and passed by parameter; components never read the environment
// themselves.
type Config struct {
	APIKey  string
	ViewURL string
	Columns string
	Headers string
	Color   string
	Debug   bool
}

// File holds optional defaults loaded from ~/.config/fac-cli/config.yaml.
// Environment variables always win over file values.
type File struct {
	Columns string `yaml:"columns,omitempty"`
	Headers string `yaml:"headers,omitempty"`
	Color   string `yaml:"color,omitempty"`
}

// configPathFunc is the function used to get the default config file path.
// It can be overridden for testing.
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fac-cli", "config.yaml"), nil
}

// LoadFile loads the optional defaults file, returning an empty File when it
// does not exist.
func LoadFile() (*File, error) {
	path, err := configPathFunc()
	if err != nil {
		return &File{}, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &File{}, nil
	}
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &f, nil
}

// Get returns the environment value for key, or def when unset or empty.
func Get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Require returns the environment value for key, or a user error with a
// remediation suggestion when the value is absent or empty.
func Require(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", clierrors.NewUserError(
			fmt.Sprintf("required environment variable %s not set", key),
			credentialsSuggestion,
		)
	}
	return v, nil
}

// DebugEnabled reports whether FAC_CLI_DEBUG is set to the literal "true"
// (case-insensitive).
func DebugEnabled() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(EnvDebug)), "true")
}

// Validate loads the optional .env file, enforces the required key set, fills
// optional keys with their defaults, and returns the resulting Config. It
// never returns a partial Config: the first missing required key fails the
// whole resolution.
func Validate() (*Config, error) {
	// Best effort: a malformed .env line is skipped by the parser, and an
	// unreadable file must not mask the real configuration error.
	_ = LoadEnvFile(envFileName)

	apiKey, err := Require(EnvAPIKey)
	if err != nil {
		return nil, err
	}
	viewURL, err := Require(EnvViewURL)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		APIKey:  apiKey,
		ViewURL: viewURL,
		Columns: Get(EnvColumns, ""),
		Headers: Get(EnvHeaders, ""),
		Color:   Get(EnvColor, ""),
		Debug:   DebugEnabled(),
	}

	// File defaults sit below the environment.
	if f, err := LoadFile(); err == nil {
		if cfg.Columns == "" {
			cfg.Columns = f.Columns
		}
		if cfg.Headers == "" {
			cfg.Headers = f.Headers
		}
		if cfg.Color == "" {
			cfg.Color = f.Color
		}
	}

	if cfg.Columns == "" {
		cfg.Columns = DefaultColumns
	}
	if cfg.Headers == "" {
		cfg.Headers = DefaultHeaders
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}

	return cfg, nil
}
