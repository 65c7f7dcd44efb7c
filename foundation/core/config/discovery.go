// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Searches a list of directories for the first configuration
//              file and loads it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-03-02 v0.2.0: Home directory expansion, optional discovery returns
//                      an env-only configuration

package config

import (
	"os"
	"path/filepath"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// DiscoveryOptions defines where Discover looks
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Required   bool
}

// DefaultDiscoveryOptions returns the search locations used by textkit
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:      []string{".", "./configs", "~/.config/textkit"},
		Filenames:  []string{"textkit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "TEXTKIT",
	}
}

// Discover loads the first configuration file found
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, tkerror.Wrap(err, "no configuration file found").
				WithCode(tkerror.CodeMissingConfig).
				WithOperation("config.Discover").
				WithDetail("searchPaths", ListPossibleConfigFiles(options))
		}
		return New(options.EnvPrefix), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: options.EnvPrefix})
	if err != nil {
		return nil, tkerror.Wrap(err, "found config file but failed to load").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, candidate := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", tkerror.New("configuration file not found").
		WithCode(tkerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		dir = expandHome(dir)
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

func expandHome(dir string) string {
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, strings.TrimPrefix(dir, "~"))
}
