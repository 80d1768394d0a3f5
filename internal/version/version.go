package version

import "fmt"

// Tagline is the application's tagline used in help text and documentation
const Tagline = "Check whether your PRs made it into the release branches"

// Build information injected at build time via ldflags
// Example: -ldflags="-X github.com/renato0307/pickcheck/internal/version.Version=v1.0.0"
var (
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
	Version   = "dev"
)

// Info returns formatted version information for CLI display
func Info() string {
	return fmt.Sprintf("pickcheck %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, GoVersion)
}
