package config

import (
	"os"
	"path/filepath"
	"testing"

	clierrors "github.com/foundersandcoders/fac-cli/internal/errors"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory afterwards (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

// clearConfigEnv blanks every variable the resolver reads so tests are
// independent of the invoking shell.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIKey, EnvViewURL, EnvColumns, EnvHeaders, EnvDebug, EnvColor} {
		t.Setenv(key, "")
	}
}

// useTempConfigFile points the defaults-file lookup at a temp path.
func useTempConfigFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	orig := SetConfigPathFunc(func() (string, error) { return path, nil })
	t.Cleanup(func() { SetConfigPathFunc(orig) })
}

func TestGet(t *testing.T) {
	t.Setenv("FAC_TEST_KEY", "value")

	if got := Get("FAC_TEST_KEY", "default"); got != "value" {
		t.Errorf("Get returned %q, want %q", got, "value")
	}
	if got := Get("FAC_TEST_MISSING", "default"); got != "default" {
		t.Errorf("Get returned %q, want default", got)
	}

	t.Setenv("FAC_TEST_KEY", "")
	if got := Get("FAC_TEST_KEY", "default"); got != "default" {
		t.Errorf("Get must treat empty as unset, got %q", got)
	}
}

func TestRequire(t *testing.T) {
	t.Setenv("FAC_TEST_REQ", "present")
	v, err := Require("FAC_TEST_REQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "present" {
		t.Errorf("Require returned %q", v)
	}
}

func TestRequire_Missing(t *testing.T) {
	t.Setenv("FAC_TEST_REQ", "")

	_, err := Require("FAC_TEST_REQ")
	if !clierrors.IsUserError(err) {
		t.Fatalf("expected user error, got %v", err)
	}
	if suggestion := clierrors.UserSuggestion(err); suggestion == "" {
		t.Error("expected a remediation suggestion")
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	chdir(t, t.TempDir())
	clearConfigEnv(t)
	useTempConfigFile(t, "")

	cfg, err := Validate()
	if err == nil {
		t.Fatal("expected error for missing required variables")
	}
	if cfg != nil {
		t.Error("Validate must never return a partial configuration")
	}
}

func TestValidate_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	clearConfigEnv(t)
	useTempConfigFile(t, "")
	t.Setenv(EnvAPIKey, "key123")
	t.Setenv(EnvViewURL, "https://airtable.com/appA/tblB/viwC")

	cfg, err := Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIKey != "key123" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Columns != DefaultColumns {
		t.Errorf("Columns = %q, want default", cfg.Columns)
	}
	if cfg.Headers != DefaultHeaders {
		t.Errorf("Headers = %q, want default", cfg.Headers)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want auto", cfg.Color)
	}
}

func TestValidate_DebugFlag(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"yes", false},
		{"1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			chdir(t, t.TempDir())
			clearConfigEnv(t)
			useTempConfigFile(t, "")
			t.Setenv(EnvAPIKey, "k")
			t.Setenv(EnvViewURL, "u")
			t.Setenv(EnvDebug, tt.value)

			cfg, err := Validate()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Debug != tt.want {
				t.Errorf("Debug = %v for %q, want %v", cfg.Debug, tt.value, tt.want)
			}
		})
	}
}

func TestValidate_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "AIRTABLE_API_KEY=from-file\nAIRTABLE_VIEW_URL=https://airtable.com/appA/tblB/viwC\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	chdir(t, dir)
	clearConfigEnv(t)
	useTempConfigFile(t, "")
	// t.Setenv left the keys registered as empty; unset them so the .env
	// values are picked up.
	os.Unsetenv(EnvAPIKey)
	os.Unsetenv(EnvViewURL)

	cfg, err := Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "from-file" {
		t.Errorf("APIKey = %q, want value from .env", cfg.APIKey)
	}
}

func TestValidate_FileDefaultsBelowEnv(t *testing.T) {
	chdir(t, t.TempDir())
	clearConfigEnv(t)
	useTempConfigFile(t, "columns: A,B\nheaders: C,D\ncolor: never\n")
	t.Setenv(EnvAPIKey, "k")
	t.Setenv(EnvViewURL, "u")
	t.Setenv(EnvColumns, "FromEnv")

	cfg, err := Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Columns != "FromEnv" {
		t.Errorf("environment must win over file: Columns = %q", cfg.Columns)
	}
	if cfg.Headers != "C,D" {
		t.Errorf("file default not applied: Headers = %q", cfg.Headers)
	}
	if cfg.Color != "never" {
		t.Errorf("file default not applied: Color = %q", cfg.Color)
	}
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv(EnvDebug, "TrUe")
	if !DebugEnabled() {
		t.Error("expected case-insensitive true to enable debug")
	}

	t.Setenv(EnvDebug, "truthy")
	if DebugEnabled() {
		t.Error("only the literal true enables debug")
	}
}
