// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type: loading and parsing TOML and YAML
//              files, environment overrides and typed dot-notation access.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2025-03-09
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Dropped env/path caches and watchers, env values are
//                      read on every access
// - 2025-03-09 v0.2.1: Removed unused accessors

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
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

// Config is a thread-safe view of configuration data
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format
	EnvPrefix string
	Defaults  map[string]interface{}
}

// New returns an empty configuration that reads overrides with envPrefix
func New(envPrefix string) *Config {
	return &Config{
		data:      make(map[string]interface{}),
		envPrefix: envPrefix,
	}
}

// Load loads configuration from a file with format auto-detection
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, tkerror.New("config file path cannot be empty").
			WithCode(tkerror.CodeInvalidInput).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tkerror.Newf("config file not found: %s", filePath).
				WithCode(tkerror.CodeMissingConfig).
				WithOperation("config.LoadWithOptions").
				WithDetail("filePath", filePath)
		}
		return nil, tkerror.Wrap(err, "failed to read config file").
			WithCode(tkerror.CodeConfigError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to parse config file").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	if options.Defaults != nil {
		data = mergeDefaults(data, options.Defaults)
	}

	return &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString parses configuration content in the given format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to parse config from string").
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	return &Config{data: data, format: format}, nil
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, tkerror.Wrap(err, "TOML parse error").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, tkerror.Wrap(err, "YAML parse error").
				WithCode(tkerror.CodeInvalidConfig).
				WithOperation("config.parseContent")
		}
	default:
		return nil, tkerror.Newf("unsupported format: %s", format).
			WithCode(tkerror.CodeInvalidConfig).
			WithOperation("config.parseContent")
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	return data, nil
}

// mergeDefaults fills missing keys from defaults, recursing into tables
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := deepCopyMap(defaults)
	for k, v := range data {
		sub, isMap := v.(map[string]interface{})
		def, defIsMap := result[k].(map[string]interface{})
		if isMap && defIsMap {
			result[k] = mergeDefaults(sub, def)
			continue
		}
		result[k] = v
	}
	return result
}

// GetString returns a string value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	if env, ok := c.lookupEnv(key); ok {
		return env
	}

	if value := c.getValue(key); value != nil {
		switch v := value.(type) {
		case string:
			return v
		default:
			return fmt.Sprintf("%v", v)
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetInt returns an integer value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	if env, ok := c.lookupEnv(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(env)); err == nil {
			return i
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	if env, ok := c.lookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(env)); err == nil {
			return b
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetFloat returns a float value with optional default
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	if env, ok := c.lookupEnv(key); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(env), 64); err == nil {
			return f
		}
	}

	switch v := c.getValue(key).(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetDuration returns a duration value with optional default.
// Strings are parsed with time.ParseDuration, numbers are taken as seconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	if env, ok := c.lookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(env)); err == nil {
			return d
		}
	}

	switch v := c.getValue(key).(type) {
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	case int64:
		return time.Duration(v) * time.Second
	case int:
		return time.Duration(v) * time.Second
	case float64:
		return time.Duration(v * float64(time.Second))
	case time.Duration:
		return v
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

func (c *Config) getValue(key string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lookupPath(c.data, key)
}

func lookupPath(data map[string]interface{}, key string) interface{} {
	keys := strings.Split(key, ".")
	current := data
	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func (c *Config) lookupEnv(key string) (string, bool) {
	c.mu.RLock()
	prefix := c.envPrefix
	c.mu.RUnlock()
	if prefix == "" {
		return "", false
	}
	value, ok := os.LookupEnv(EnvKey(prefix, key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// EnvKey converts a dot-notation key into its environment variable name:
// EnvKey("TEXTKIT", "pattern.cache_size") == "TEXTKIT_PATTERN_CACHE_SIZE".
func EnvKey(prefix, key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if prefix != "" {
		envKey = strings.ToUpper(prefix) + "_" + envKey
	}
	return envKey
}

// Has reports whether the key is set in the file data or the environment
func (c *Config) Has(key string) bool {
	if _, ok := c.lookupEnv(key); ok {
		return true
	}
	return c.getValue(key) != nil
}

// Set sets a value at runtime, creating intermediate tables
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := strings.Split(key, ".")
	current := c.data
	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// Keys returns all leaf keys in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			full := k
			if prefix != "" {
				full = prefix + "." + k
			}
			if sub, ok := v.(map[string]interface{}); ok {
				walk(full, sub)
				continue
			}
			keys = append(keys, full)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String provides a readable representation of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format)}
	if c.filePath != "" {
		parts = append(parts, "path: "+c.filePath)
	}
	if c.envPrefix != "" {
		parts = append(parts, "envPrefix: "+c.envPrefix)
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))
	return strings.Join(parts, ", ")
}
