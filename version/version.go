// Package version provides build information and a reusable version command.
package version

import "fmt"

// Set via -ldflags "-X github.com/baikal-linux/chromium-launcher/version.Version=..." at build time.
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info holds version information for a binary.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	BuildDate string `json:"buildDate" yaml:"buildDate"`
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	Name      string `json:"name" yaml:"name"`
}

// New creates an Info for the named binary from the build-time variables.
func New(name string) *Info {
	return &Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		Name:      name,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
