package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/baikal-linux/chromium-launcher/cliout"
	"github.com/baikal-linux/chromium-launcher/cmdutil"
	"github.com/baikal-linux/chromium-launcher/env"
	"github.com/baikal-linux/chromium-launcher/launcher"
	"github.com/baikal-linux/chromium-launcher/pathutil"
	"github.com/baikal-linux/chromium-launcher/procutil"
)

// Check statuses reported by doctor.
const (
	statusOK      = "ok"
	statusWarning = "warning"
	statusError   = "error"
)

// vainfoTool reports the VA-API driver that LIBVA_DRIVER_NAME selects.
const vainfoTool = "vainfo"

// Chromium's profile directory and its single-instance lock, relative to the
// config home. The lock is a symlink whose target is "<hostname>-<pid>".
const (
	profileDirName = "chromium"
	singletonLock  = "SingletonLock"
)

// ErrDoctorFailed is returned by the doctor command when a check fails.
var ErrDoctorFailed = errors.New("doctor found problems")

type doctorCheck struct {
	Name   string `json:"name" yaml:"name"`
	Status string `json:"status" yaml:"status"`
	Detail string `json:"detail" yaml:"detail"`
}

type doctorResult struct {
	Checks    []doctorCheck   `json:"checks" yaml:"checks"`
	Processes []procutil.Info `json:"processes" yaml:"processes"`
}

func newDoctorCommand(opts *rootOptions) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the Chromium binary and the VA-API setup",
		Long: `doctor verifies that the launch would succeed: the flags files parse, the
Chromium binary is executable and reports its version, and vainfo can
load the VA-API driver with the launcher's default environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			result := runDoctor(cmd.Context(), cfg, opts.wrapper, timeout)
			if err := cliout.Print(result, func() { printDoctor(result) }); err != nil {
				return err
			}

			for _, c := range result.Checks {
				if c.Status == statusError {
					return ErrDoctorFailed
				}
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", cmdutil.DefaultTimeout, "Timeout for each external check")
	return cmd
}

func runDoctor(ctx context.Context, cfg launcher.Config, wrapper string, timeout time.Duration) doctorResult {
	result := doctorResult{Processes: []procutil.Info{}}
	add := func(name, status, format string, args ...any) {
		result.Checks = append(result.Checks, doctorCheck{Name: name, Status: status, Detail: fmt.Sprintf(format, args...)})
	}

	plan, err := launcher.Build(cfg, wrapper, nil, os.Environ())
	if err != nil {
		add("flags", statusError, "%v", err)
		return result
	}
	add("flags", statusOK, "%d system, %d user", len(plan.SystemFlags), len(plan.UserFlags))

	envv := env.MapToSlice(plan.Env)

	if !pathutil.IsExecutable(plan.Binary) {
		add("binary", statusError, "%s is missing or not executable", plan.Binary)
	} else {
		out, err := cmdutil.RunCommandWithEnv(ctx, plan.Binary, []string{"--version"}, envv, timeout)
		if err != nil {
			add("binary", statusError, "%s --version: %v", plan.Binary, err)
		} else {
			add("binary", statusOK, "%s", firstLine(out))
		}
	}

	vainfo := pathutil.FindToolInPathList(vainfoTool, plan.Env["PATH"])
	if vainfo == "" {
		vainfo = pathutil.SearchToolInSystemPath(vainfoTool)
	}
	if vainfo == "" {
		add("vaapi", statusWarning, "%s not found; install libva-utils to verify %s=%s",
			vainfoTool, env.KeyLibvaDriverName, plan.Env[env.KeyLibvaDriverName])
	} else {
		out, err := cmdutil.RunCommandWithEnv(ctx, vainfo, nil, envv, timeout)
		if err != nil {
			add("vaapi", statusWarning, "%s failed with %s=%s: %v",
				vainfoTool, env.KeyLibvaDriverName, plan.Env[env.KeyLibvaDriverName], err)
		} else {
			add("vaapi", statusOK, "%s", driverLine(out))
		}
	}

	lockPath := filepath.Join(filepath.Dir(cfg.UserFlagsPath), profileDirName, singletonLock)
	status, detail := checkProfileLock(lockPath)
	add("profile", status, "%s", detail)

	listCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	procs, err := procutil.FindProcessesByName(listCtx, filepath.Base(plan.Binary))
	if err != nil {
		add("processes", statusWarning, "%v", err)
	} else {
		result.Processes = procs
		add("processes", statusOK, "%d running", len(procs))
	}

	return result
}

// checkProfileLock reports whether the profile lock at path belongs to a live
// process. A lock left by a dead process makes Chromium refuse the profile
// when the hostname has changed.
func checkProfileLock(path string) (status, detail string) {
	target, err := os.Readlink(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return statusOK, "not locked"
		}
		return statusWarning, fmt.Sprintf("%s: %v", path, err)
	}

	idx := strings.LastIndex(target, "-")
	pid, err := strconv.Atoi(target[idx+1:])
	if idx < 0 || err != nil {
		return statusWarning, fmt.Sprintf("%s: unrecognized lock target %q", path, target)
	}
	if procutil.IsProcessRunning(pid) {
		return statusOK, fmt.Sprintf("locked by running process %d", pid)
	}
	return statusWarning, fmt.Sprintf("stale lock %s from process %d; remove it if Chromium reports the profile in use", path, pid)
}

func firstLine(out []byte) string {
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return strings.TrimSpace(line)
}

// driverLine picks the "Driver version" line from vainfo output.
func driverLine(out []byte) string {
	for _, line := range strings.Split(string(out), "\n") {
		if _, after, ok := strings.Cut(line, "Driver version:"); ok {
			return strings.TrimSpace(after)
		}
	}
	return firstLine(out)
}

func printDoctor(r doctorResult) {
	cliout.Header("Chromium doctor")
	for _, c := range r.Checks {
		switch c.Status {
		case statusOK:
			cliout.ItemSuccess("%s: %s", c.Name, c.Detail)
		case statusWarning:
			cliout.ItemWarning("%s: %s", c.Name, c.Detail)
		default:
			cliout.ItemError("%s: %s", c.Name, c.Detail)
		}
	}

	if len(r.Processes) > 0 {
		rows := make([]cliout.TableRow, 0, len(r.Processes))
		for _, p := range r.Processes {
			rows = append(rows, cliout.TableRow{"PID": fmt.Sprintf("%d", p.PID), "Command": p.Cmdline})
		}
		cliout.Header("Running instances")
		cliout.Table([]string{"PID", "Command"}, rows)
	}

	failed, warned := 0, 0
	for _, c := range r.Checks {
		switch c.Status {
		case statusError:
			failed++
		case statusWarning:
			warned++
		}
	}
	cliout.Plain("")
	switch {
	case failed > 0:
		cliout.Error("%d of %d checks failed", failed, len(r.Checks))
	case warned > 0:
		cliout.Warning("%d of %d checks need attention", warned, len(r.Checks))
	default:
		cliout.Success("All %d checks passed", len(r.Checks))
	}
}
