package version

import "fmt"

// Set at build time:
// go build -ldflags "-X github.com/alexiusacademia/gopt/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// String returns the version with the build details that are known
func String() string {
	switch {
	case GitCommit != "unknown" && BuildTime != "unknown":
		return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildTime)
	case GitCommit != "unknown":
		return fmt.Sprintf("%s (%s)", Version, GitCommit)
	}
	return Version
}
