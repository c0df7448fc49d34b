package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/baikal-linux/chromium-launcher/cliout"
	"github.com/baikal-linux/chromium-launcher/launcher"
	"github.com/baikal-linux/chromium-launcher/logutil"
	"github.com/baikal-linux/chromium-launcher/version"
)

// DefaultWrapperPath is where the launcher is installed; it becomes CHROME_WRAPPER.
const DefaultWrapperPath = "/usr/bin/chromium"

// rootOptions are the persistent flags shared by the inspection commands.
type rootOptions struct {
	debug       bool
	output      string
	color       string
	binary      string
	systemFlags string
	userFlags   string
	wrapper     string
}

// config resolves the launch configuration, applying any path overrides.
func (o *rootOptions) config() (launcher.Config, error) {
	cfg, err := launcher.DefaultConfig(os.Getenv, os.UserHomeDir)
	if err != nil {
		if o.userFlags == "" {
			return launcher.Config{}, err
		}
		cfg = launcher.Config{Binary: launcher.DefaultBinary, SystemFlagsPath: launcher.DefaultSystemFlagsPath}
	}

	if o.binary != "" {
		cfg.Binary = o.binary
	}
	if o.systemFlags != "" {
		cfg.SystemFlagsPath = o.systemFlags
	}
	if o.userFlags != "" {
		cfg.UserFlagsPath = o.userFlags
	}
	return cfg, nil
}

// NewFlagsCommand creates the root command of the chromium-flags inspection tool.
func NewFlagsCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "chromium-flags",
		Short: "Inspect the flags and environment the Chromium launcher will use",
		Long: `chromium-flags shows what the Chromium launcher would execute without
launching the browser: the flags read from the system and user
chromium-flags.conf files, the final command line and the default
environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupFromEnv(os.Getenv)
			if opts.debug {
				logutil.SetLevel(logutil.LevelDebug)
			}
			if err := cliout.SetColorMode(opts.color); err != nil {
				return err
			}
			return cliout.SetFormat(opts.output)
		},
	}

	opts.bind(cmd.PersistentFlags())

	cmd.AddCommand(
		newShowCommand(opts),
		newCheckCommand(opts),
		newDoctorCommand(opts),
		newEditCommand(opts),
		version.NewCommand(version.New("chromium-flags")),
	)

	return cmd
}

// bind registers the persistent flags on the given flag set.
func (o *rootOptions) bind(flags *pflag.FlagSet) {
	flags.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	flags.StringVarP(&o.output, "output", "o", "default", "Output format (default, json, yaml)")
	flags.StringVar(&o.color, "color", "auto", "Colorize output (auto, always, never)")
	flags.StringVar(&o.binary, "binary", "", "Chromium binary (default "+launcher.DefaultBinary+")")
	flags.StringVar(&o.systemFlags, "system-flags", "", "System flags file (default "+launcher.DefaultSystemFlagsPath+")")
	flags.StringVar(&o.userFlags, "user-flags", "", "User flags file (default $XDG_CONFIG_HOME/"+launcher.FlagsFileName+")")
	flags.StringVar(&o.wrapper, "wrapper", DefaultWrapperPath, "Launcher path reported as CHROME_WRAPPER")
}
