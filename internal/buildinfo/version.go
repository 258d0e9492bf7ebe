// Package buildinfo contains build-time information embedded via ldflags
package buildinfo

// Set at build time, e.g.
// go build -ldflags "-X github.com/YoshitsuguKoike/verve/internal/buildinfo.Version=v1.0.0 -X github.com/YoshitsuguKoike/verve/internal/buildinfo.Commit=abc123"
var (
	Version = "dev"
	Commit  = ""
)

// GetVersion returns the current version, with "dev" as default for development builds
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// GetCommit returns the source revision, or "unknown"
func GetCommit() string {
	if Commit == "" {
		return "unknown"
	}
	return Commit
}
