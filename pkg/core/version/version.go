// ============================================================================
// mystring - Text value toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information, overridable at link time
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Build information. Set via
//
//	go build -ldflags "-X github.com/msto63/mystring/pkg/core/version.Version=1.2.3"
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Short returns the version with a leading v
func Short() string {
	return "v" + Version
}

// Info returns a multi-line description of the build
func Info() string {
	return fmt.Sprintf("mystring %s\n  Commit:     %s\n  Built:      %s\n  Go version: %s\n  OS/Arch:    %s/%s",
		Short(), GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
