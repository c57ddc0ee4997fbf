// Package version exposes build metadata injected with -ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X github.com/rshade/lithiumscope/pkg/version.version=v1.2.3"
//
//nolint:gochecknoglobals // Overwritten by the linker.
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns "<version> (<commit>, built <date>)".
func String() string {
	return fmt.Sprintf("%s (%s, built %s)", version, gitCommit, buildDate)
}
