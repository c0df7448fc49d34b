package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/baikal-linux/chromium-launcher/cliout"
	"github.com/baikal-linux/chromium-launcher/env"
	"github.com/baikal-linux/chromium-launcher/launcher"
)

type showResult struct {
	Config      launcher.Config   `json:"config" yaml:"config"`
	Plan        *launcher.Plan    `json:"plan" yaml:"plan"`
	CommandLine string            `json:"commandLine" yaml:"commandLine"`
	Environment map[string]string `json:"environment,omitempty" yaml:"environment,omitempty"`
}

func newShowCommand(opts *rootOptions) *cobra.Command {
	var envPrefixes []string

	cmd := &cobra.Command{
		Use:   "show [-- chromium args...]",
		Short: "Show the command line and environment Chromium would be launched with",
		Example: `  chromium-flags show
  chromium-flags show -o yaml -- --incognito https://example.org
  chromium-flags show --env LIBVA_ --env MESA_`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			plan, err := launcher.Build(cfg, opts.wrapper, args, os.Environ())
			if err != nil {
				return err
			}

			result := showResult{
				Config:      cfg,
				Plan:        plan,
				CommandLine: shellquote.Join(plan.Argv...),
			}
			if len(envPrefixes) > 0 {
				result.Environment = map[string]string{}
				for _, prefix := range envPrefixes {
					for k, v := range env.FilterByPrefix(plan.Env, prefix) {
						result.Environment[k] = v
					}
				}
			}

			return cliout.Print(result, func() { printShow(result) })
		},
	}

	cmd.Flags().StringArrayVar(&envPrefixes, "env", nil, "Also show environment variables with this name prefix (repeatable)")
	return cmd
}

func printShow(r showResult) {
	cliout.Header("Chromium launch plan")
	cliout.Label("Binary", r.Plan.Binary)
	cliout.Label("System", fmt.Sprintf("%s (%d flags)", r.Config.SystemFlagsPath, len(r.Plan.SystemFlags)))
	cliout.Label("User", fmt.Sprintf("%s (%d flags)", r.Config.UserFlagsPath, len(r.Plan.UserFlags)))
	cliout.Label("Arguments", fmt.Sprintf("%d", len(r.Plan.Args)))

	cliout.Header("Command line")
	cliout.Plain("%s", r.CommandLine)

	cliout.Header("Default environment")
	rows := make([]cliout.TableRow, 0, len(r.Plan.Defaults))
	for _, d := range r.Plan.Defaults {
		rows = append(rows, cliout.TableRow{"Variable": d.Key, "Value": d.Value, "Origin": string(d.Origin)})
	}
	cliout.Table([]string{"Variable", "Value", "Origin"}, rows)

	if len(r.Environment) == 0 {
		return
	}

	cliout.Header("Environment")
	keys := make([]string, 0, len(r.Environment))
	for k := range r.Environment {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cliout.Bullet("%s=%s", k, r.Environment[k])
	}
}
