package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/baikal-linux/chromium-launcher/cliout"
	"github.com/baikal-linux/chromium-launcher/flags"
	"github.com/baikal-linux/chromium-launcher/logutil"
	"github.com/baikal-linux/chromium-launcher/security"
)

// fileCheck is the result of checking one flags file.
type fileCheck struct {
	Scope   string   `json:"scope" yaml:"scope"`
	Path    string   `json:"path" yaml:"path"`
	Exists  bool     `json:"exists" yaml:"exists"`
	Flags   []string `json:"flags" yaml:"flags"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
	Warning string   `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// ErrCheckFailed is returned by the check command when a flags file cannot be used.
var ErrCheckFailed = errors.New("flags check failed")

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the system and user flags files",
		Long: `check parses both flags files with the same rules the launcher uses and
reports how many flags each contributes. It fails if a file exists but
cannot be read or parsed, which would make the launcher abort.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			results := []fileCheck{
				checkFlagsFile("system", cfg.SystemFlagsPath),
				checkFlagsFile("user", cfg.UserFlagsPath),
			}

			if err := cliout.Print(results, func() { printCheck(results) }); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, failed, len(results))
			}
			return nil
		},
	}
}

func checkFlagsFile(scope, path string) fileCheck {
	log := logutil.NewLogger("check").WithFields("scope", scope, "path", path)
	result := fileCheck{Scope: scope, Path: path, Flags: []string{}}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("flags file not present")
			return result
		}
		result.Exists = true
		result.Error = err.Error()
		return result
	}
	result.Exists = true

	loaded, err := flags.Load(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Flags = loaded

	if err := security.ValidateFilePermissions(path); err != nil {
		result.Warning = err.Error()
		log.Warn("insecure flags file", "error", err)
	}

	return result
}

func printCheck(results []fileCheck) {
	cliout.Header("Flags files")
	for _, r := range results {
		switch {
		case r.Error != "":
			cliout.ItemError("%s: %s", r.Scope, r.Error)
		case !r.Exists:
			cliout.ItemInfo("%s: %s not present", r.Scope, r.Path)
		default:
			cliout.ItemSuccess("%s: %s (%d flags)", r.Scope, r.Path, len(r.Flags))
		}
		if r.Warning != "" {
			cliout.ItemWarning("%s: %s", r.Scope, r.Warning)
		}
	}
}
