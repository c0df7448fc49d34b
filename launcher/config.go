package launcher

import (
	"fmt"
	"path/filepath"
)

const (
	// DefaultBinary is the Chromium executable that is launched.
	DefaultBinary = "/usr/lib/chromium/chromium"

	// DefaultSystemFlagsPath is the system-wide flags file.
	DefaultSystemFlagsPath = "/etc/chromium-flags.conf"

	// FlagsFileName is the name of the per-user flags file inside the config home.
	FlagsFileName = "chromium-flags.conf"

	// EnvConfigHome names the variable that overrides the per-user config directory.
	EnvConfigHome = "XDG_CONFIG_HOME"
)

// Config holds the locations used for a launch.
type Config struct {
	Binary          string `json:"binary" yaml:"binary"`
	SystemFlagsPath string `json:"systemFlagsPath" yaml:"systemFlagsPath"`
	UserFlagsPath   string `json:"userFlagsPath" yaml:"userFlagsPath"`
}

// DefaultConfig returns the standard launch configuration. getenv and homeDir are
// usually os.Getenv and os.UserHomeDir.
func DefaultConfig(getenv func(string) string, homeDir func() (string, error)) (Config, error) {
	userPath, err := UserFlagsPath(getenv, homeDir)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Binary:          DefaultBinary,
		SystemFlagsPath: DefaultSystemFlagsPath,
		UserFlagsPath:   userPath,
	}, nil
}

// UserFlagsPath returns $XDG_CONFIG_HOME/chromium-flags.conf, or
// ~/.config/chromium-flags.conf when XDG_CONFIG_HOME is unset or empty.
// An empty XDG_CONFIG_HOME is treated as unset, as the XDG base directory rules
// require; a plain "set or not" lookup would instead yield a path relative to
// the working directory. homeDir is only consulted in the fallback case.
func UserFlagsPath(getenv func(string) string, homeDir func() (string, error)) (string, error) {
	if configHome := getenv(EnvConfigHome); configHome != "" {
		return filepath.Join(configHome, FlagsFileName), nil
	}

	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", FlagsFileName), nil
}
