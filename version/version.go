// Package version carries the build version, set with -ldflags at release.
package version

// Version of the snake binary.
var Version = "dev"
