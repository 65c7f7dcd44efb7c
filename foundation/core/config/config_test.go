// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, env overrides, discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML tests
// - 2025-03-02 v0.2.0: Env override, discovery and pattern rule tests

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

const sampleTOML = `
[log]
level = "debug"
format = "text"

[pattern]
engine = "backtracking"
timeout = "500ms"
cache_size = 128
strict = true

[server]
host = "127.0.0.1"
port = 50071
`

const sampleYAML = `
log:
  level: warn
pattern:
  engine: linear
  timeout: 3
  cache_size: 16
server:
  port: 9000
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textkit.toml", sampleTOML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format() != FormatTOML {
		t.Errorf("Format() = %v, want toml", cfg.Format())
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q", got)
	}
	if got := cfg.GetDuration("pattern.timeout"); got != 500*time.Millisecond {
		t.Errorf("pattern.timeout = %v", got)
	}
	if got := cfg.GetInt("pattern.cache_size"); got != 128 {
		t.Errorf("pattern.cache_size = %d", got)
	}
	if !cfg.GetBool("pattern.strict") {
		t.Error("pattern.strict should be true")
	}
	if got := cfg.GetInt("server.missing", 7); got != 7 {
		t.Errorf("default = %d, want 7", got)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textkit.yaml", sampleYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Format() != FormatYAML {
		t.Errorf("Format() = %v, want yaml", cfg.Format())
	}
	if got := cfg.GetString("pattern.engine"); got != "linear" {
		t.Errorf("pattern.engine = %q", got)
	}
	if got := cfg.GetDuration("pattern.timeout"); got != 3*time.Second {
		t.Errorf("numeric timeout = %v, want 3s", got)
	}
	if got := cfg.GetInt("server.port"); got != 9000 {
		t.Errorf("server.port = %d", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.toml", "[log\nlevel=")

	tests := []struct {
		name string
		path string
		code tkerror.Code
	}{
		{"empty path", " ", tkerror.CodeInvalidInput},
		{"missing file", filepath.Join(dir, "nope.toml"), tkerror.CodeMissingConfig},
		{"parse error", broken, tkerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !tkerror.HasCode(err, tt.code) {
				t.Errorf("error %v does not carry %s", err, tt.code)
			}
		})
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textkit.toml", sampleTOML)
	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: "TEXTKIT"})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	t.Setenv("TEXTKIT_PATTERN_ENGINE", "auto")
	t.Setenv("TEXTKIT_PATTERN_CACHE_SIZE", "4")
	t.Setenv("TEXTKIT_PATTERN_TIMEOUT", "1s")

	if got := cfg.GetString("pattern.engine"); got != "auto" {
		t.Errorf("pattern.engine = %q, want env value", got)
	}
	if got := cfg.GetInt("pattern.cache_size"); got != 4 {
		t.Errorf("pattern.cache_size = %d, want 4", got)
	}
	if got := cfg.GetDuration("pattern.timeout"); got != time.Second {
		t.Errorf("pattern.timeout = %v, want 1s", got)
	}
	if got := cfg.GetString("server.host"); got != "127.0.0.1" {
		t.Errorf("server.host = %q, file value expected", got)
	}
}

func TestEnvKey(t *testing.T) {
	if got := EnvKey("textkit", "pattern.cache_size"); got != "TEXTKIT_PATTERN_CACHE_SIZE" {
		t.Errorf("EnvKey() = %q", got)
	}
	if got := EnvKey("", "log.level"); got != "LOG_LEVEL" {
		t.Errorf("EnvKey() = %q", got)
	}
}

func TestLoadWithOptions_Defaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "textkit.toml", "[pattern]\nengine = \"linear\"\n")
	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"pattern": map[string]interface{}{"engine": "backtracking", "cache_size": int64(256)},
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	if got := cfg.GetString("pattern.engine"); got != "linear" {
		t.Errorf("file value should win, got %q", got)
	}
	if got := cfg.GetInt("pattern.cache_size"); got != 256 {
		t.Errorf("default should fill missing key, got %d", got)
	}
}

func TestSetAndKeys(t *testing.T) {
	cfg := New("")
	cfg.Set("server.port", 1234)
	cfg.Set("log.level", "info")

	if !cfg.Has("server.port") {
		t.Error("Has(server.port) = false")
	}
	keys := cfg.Keys()
	if len(keys) != 2 || keys[0] != "log.level" || keys[1] != "server.port" {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	configs := filepath.Join(dir, "configs")
	if err := os.Mkdir(configs, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, configs, "textkit.yml", sampleYAML)

	opts := DiscoveryOptions{
		Paths:     []string{dir, configs},
		Filenames: []string{"textkit"},
		EnvPrefix: "TEXTKIT",
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if filepath.Base(cfg.FilePath()) != "textkit.yml" {
		t.Errorf("FilePath() = %q", cfg.FilePath())
	}

	opts.Paths = []string{filepath.Join(dir, "empty")}
	cfg, err = Discover(opts)
	if err != nil {
		t.Fatalf("optional Discover() error = %v", err)
	}
	if len(cfg.Keys()) != 0 {
		t.Error("optional discovery should return an empty config")
	}

	opts.Required = true
	if _, err := Discover(opts); !tkerror.HasCode(err, tkerror.CodeMissingConfig) {
		t.Errorf("required discovery error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(sampleTOML, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	rules := ValidationRules{
		"pattern.engine":     {Type: "string", OneOf: []string{"backtracking", "linear", "auto"}},
		"pattern.timeout":    {Type: "duration", Min: Bound(0.001)},
		"pattern.cache_size": {Type: "int", Min: Bound(0)},
		"server.host":        {Pattern: `^[\w.-]+$`},
		"server.port":        {Type: "int", Min: Bound(1), Max: Bound(65535)},
	}
	if result := cfg.Validate(rules); !result.Valid {
		t.Fatalf("Validate() errors = %v", result.Errors)
	}

	cfg.Set("server.port", int64(70000))
	cfg.Set("pattern.engine", "fast")
	cfg.Set("log.format", "xml")
	result := cfg.Validate(ValidationRules{
		"server.port":    {Type: "int", Max: Bound(65535)},
		"pattern.engine": {OneOf: []string{"backtracking", "linear", "auto"}},
		"log.format":     {Pattern: `^(json|text|console|logfmt)$`},
		"server.tls":     {Required: true},
	})
	if result.Valid || len(result.Errors) != 4 {
		t.Errorf("Validate() = %+v, want 4 errors", result)
	}
}

func TestValidate_InvalidPatternRule(t *testing.T) {
	cfg := New("")
	cfg.Set("name", "x")
	result := cfg.Validate(ValidationRules{"name": {Pattern: `(`}})
	if result.Valid {
		t.Error("an uncompilable pattern rule should fail validation")
	}
}
