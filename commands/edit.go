package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baikal-linux/chromium-launcher/cliout"
	"github.com/baikal-linux/chromium-launcher/editor"
	"github.com/baikal-linux/chromium-launcher/fileutil"
	"github.com/baikal-linux/chromium-launcher/logutil"
)

// flagsFileTemplate seeds a new flags file.
const flagsFileTemplate = `# Chromium flags, one or more per line, split like shell words.
# Lines starting with # are ignored. Example:
#
# --ozone-platform-hint=auto
# --enable-features="VaapiVideoDecoder,VaapiVideoEncoder"
`

func newEditCommand(opts *rootOptions) *cobra.Command {
	var system bool
	var editorCmd string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the user flags file in an editor",
		Long: `edit opens the user flags file in $EDITOR (or $VISUAL), creating it with
a commented template first if it does not exist. The file is checked after
the editor exits. Use --system to edit the system-wide file instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			scope, path := "user", cfg.UserFlagsPath
			if system {
				scope, path = "system", cfg.SystemFlagsPath
			}
			log := logutil.NewLogger("edit").WithFields("scope", scope, "path", path)

			created, err := fileutil.CreateIfMissing(path, []byte(flagsFileTemplate))
			if err != nil {
				return fmt.Errorf("failed to create %s flags file: %w", scope, err)
			}
			if created {
				log.Debug("created flags file from template")
				if !cliout.IsStructured() {
					cliout.Info("Created %s", path)
				}
			}

			if err := editor.OpenWithOptions(path, editor.Options{
				Editor: editorCmd,
				Stdin:  cmd.InOrStdin(),
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}); err != nil {
				return err
			}

			result := checkFlagsFile(scope, path)
			if err := cliout.Print(result, func() { printCheck([]fileCheck{result}) }); err != nil {
				return err
			}
			if result.Error != "" {
				return fmt.Errorf("%w: %s", ErrCheckFailed, result.Error)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, "Edit the system flags file")
	cmd.Flags().StringVar(&editorCmd, "editor", "", "Editor command (default $EDITOR, $VISUAL or a detected editor)")
	return cmd
}
