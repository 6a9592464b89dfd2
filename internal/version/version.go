// Package version carries build metadata, set with -ldflags at release time.
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
