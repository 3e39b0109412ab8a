// Package ctryrisk holds build metadata for the ctryrisk application.
package ctryrisk

var (
	// Version of the application, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
