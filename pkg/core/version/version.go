// ============================================================================
// textkit - Pattern Matching and String Transforms
// ============================================================================
//
// Package:     version
// Description: Central version information for the library, CLI and service
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for textkit components
const (
	// Library version of foundation/utils/patternx and stringx
	Library = "0.3.0"

	// Application versions
	CLI     = "0.3.0"
	Service = "0.3.0"

	// APIVersion is the gRPC package version
	APIVersion = "v1"
)

// Set at build time with -ldflags "-X .../pkg/core/version.GitCommit=..."
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "textkit":
		return CLI
	case "service", "server", "textkit-service":
		return Service
	default:
		return Library
	}
}

// Info returns a one-line build description for name
func Info(name string) string {
	return fmt.Sprintf("%s %s (library %s, api %s, commit %s, built %s, %s %s/%s)",
		name, ComponentVersion(name), Library, APIVersion, GitCommit, BuildDate,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
