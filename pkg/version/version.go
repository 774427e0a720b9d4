// Package version holds build information injected via ldflags:
//
//	go build -ldflags "-X github.com/sadopc/gojoke/pkg/version.Version=v1.2.0"
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the build information for `gojoke version`.
func String() string {
	return fmt.Sprintf("gojoke %s (%s) built %s", Version, Commit, Date)
}
