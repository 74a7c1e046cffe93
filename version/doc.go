// Package version reports build information for the gofetch binary.
//
// Version, GitCommit and BuildTime are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/gofetch/version.Version=1.0.0"
//
// Anything left unset is filled from the VCS stamp in runtime/debug build
// info when available.
package version
