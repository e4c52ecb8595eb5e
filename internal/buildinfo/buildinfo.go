// Package buildinfo carries release metadata set at link time.
package buildinfo

// Set with -ldflags "-X github.com/aidanlsb/tempio/internal/buildinfo.Version=..."
// for release builds. Empty for local builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
