// Package version holds build metadata, set with -ldflags -X at link time.
package version

import "fmt"

var (
	Version   = "dev"
	GitSHA    = "unknown"
	BuildTime = "unknown"
)

// String formats the metadata for -version output and startup logs.
func String() string {
	return fmt.Sprintf("trackcore %s (%s, built %s)", Version, GitSHA, BuildTime)
}
