package launcher

import (
	"fmt"
	"os"

	"github.com/baikal-linux/chromium-launcher/env"
	"github.com/baikal-linux/chromium-launcher/flags"
	"github.com/baikal-linux/chromium-launcher/logutil"
	"github.com/baikal-linux/chromium-launcher/procutil"
)

// Plan is a fully assembled launch. It is plain data until Exec is called.
type Plan struct {
	Binary string            `json:"binary" yaml:"binary"`
	Argv   []string          `json:"argv" yaml:"argv"`
	Env    map[string]string `json:"-" yaml:"-"`

	SystemFlags []string `json:"systemFlags" yaml:"systemFlags"`
	UserFlags   []string `json:"userFlags" yaml:"userFlags"`
	Args        []string `json:"args" yaml:"args"`

	// Defaults reports the effective value and origin of every default variable.
	Defaults []env.Resolved `json:"defaults" yaml:"defaults"`
}

// ExecError reports a failed process replacement.
type ExecError struct {
	Path string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Path, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Replacer replaces the current process image. It must not return on success.
type Replacer func(path string, argv []string, envv []string) error

var replacer Replacer = procutil.Replace

// SetReplacer sets the function Exec uses to replace the process (useful for testing).
// Returns the previous replacer so it can be restored.
func SetReplacer(r Replacer) Replacer {
	prev := replacer
	replacer = r
	return prev
}

// Build loads both flags files and assembles the launch plan.
// wrapper is the path the launcher was invoked as, args the arguments after it,
// and environ the caller's environment in KEY=VALUE form.
func Build(cfg Config, wrapper string, args []string, environ []string) (*Plan, error) {
	log := logutil.NewLogger("launcher").WithOperation("build")

	systemFlags, err := flags.Load(cfg.SystemFlagsPath)
	if err != nil {
		return nil, fmt.Errorf("system flags: %w", err)
	}
	log.Debug("loaded flags", "path", cfg.SystemFlagsPath, "count", len(systemFlags))

	userFlags, err := flags.Load(cfg.UserFlagsPath)
	if err != nil {
		return nil, fmt.Errorf("user flags: %w", err)
	}
	log.Debug("loaded flags", "path", cfg.UserFlagsPath, "count", len(userFlags))

	callerArgs := make([]string, len(args))
	copy(callerArgs, args)

	argv := make([]string, 0, 1+len(systemFlags)+len(userFlags)+len(callerArgs))
	argv = append(argv, cfg.Binary)
	argv = append(argv, systemFlags...)
	argv = append(argv, userFlags...)
	argv = append(argv, callerArgs...)

	base := env.SliceToMap(environ)
	defaults := env.Defaults(wrapper)

	return &Plan{
		Binary:      cfg.Binary,
		Argv:        argv,
		Env:         env.WithDefaults(base, defaults),
		SystemFlags: systemFlags,
		UserFlags:   userFlags,
		Args:        callerArgs,
		Defaults:    env.Resolve(base, defaults),
	}, nil
}

// Exec replaces the current process with the planned browser invocation.
// It does not return on success; a returned error is always an *ExecError.
func Exec(plan *Plan) error {
	logutil.NewLogger("launcher").WithOperation("exec").Debug("replacing process",
		"binary", plan.Binary, "argc", len(plan.Argv))

	err := replacer(plan.Binary, plan.Argv, env.MapToSlice(plan.Env))
	if err == nil {
		// Only a test replacer can get here.
		return nil
	}
	return &ExecError{Path: plan.Binary, Err: err}
}

// Run performs the whole launch sequence for the current process.
// It returns only on failure.
func Run(wrapper string, args []string) error {
	cfg, err := DefaultConfig(os.Getenv, os.UserHomeDir)
	if err != nil {
		return err
	}

	plan, err := Build(cfg, wrapper, args, os.Environ())
	if err != nil {
		return err
	}

	return Exec(plan)
}
