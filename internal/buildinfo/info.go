// Package buildinfo carries version metadata stamped into the binary.
package buildinfo

// Overridden via -ldflags at release time; the defaults identify a plain
// source build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
