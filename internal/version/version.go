// Package version holds build metadata injected at link time.
package version

// Populated via -ldflags at build time, e.g.
//
//	go build -ldflags "-X github.com/ariel-frischer/chlog/internal/version.Version=v0.3.0"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
