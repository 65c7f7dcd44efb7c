// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides, file discovery and rule validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Removed hot reloading and tracing IDs, validation rules
//                      match through patternx

/*
Package config provides configuration management for textkit.

Values are addressed with dot notation ("pattern.timeout"). Environment
variables override file values: with the prefix TEXTKIT the key
"pattern.cache_size" is read from TEXTKIT_PATTERN_CACHE_SIZE.

# Loading

	cfg, err := config.Load("textkit.toml")
	if err != nil {
		return err
	}
	timeout := cfg.GetDuration("pattern.timeout", 2*time.Second)
	engine := cfg.GetString("pattern.engine", "backtracking")

# Discovery

	cfg, err := config.Discover(config.DiscoveryOptions{
		Paths:     []string{".", "./configs"},
		Filenames: []string{"textkit"},
		EnvPrefix: "TEXTKIT",
	})

When no file is found and Required is false, Discover returns an empty
configuration that still honors environment overrides.

# Validation

	result := cfg.Validate(config.ValidationRules{
		"pattern.engine": {Type: "string", Pattern: `^(backtracking|linear|auto)$`},
		"server.port":    {Type: "int", Min: 1, Max: 65535},
	})
	if !result.Valid {
		...
	}
*/
package config
