// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and is overwritten by linker flags on release.
var Version = "dev"
