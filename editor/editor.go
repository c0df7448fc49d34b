// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package editor opens a flags file in the user's preferred editor.
package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/kballard/go-shellquote"
)

var (
	// ErrNoEditor is returned when neither EDITOR, VISUAL nor a known editor is usable.
	ErrNoEditor = errors.New("no editor found; set EDITOR or VISUAL environment variable")
	// ErrInvalidEditor is returned when an explicitly requested editor is rejected.
	ErrInvalidEditor = errors.New("editor must be a command on PATH or an absolute path to an executable")
)

// candidates are tried in order when EDITOR and VISUAL are unset or unusable.
var candidates = []string{"nano", "vim", "vi", "gedit", "kate", "xdg-open"}

// editorNamePattern validates editor names - only alphanumeric, dash, underscore, dot
var editorNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Options configures how a file is opened.
type Options struct {
	// Editor overrides detection. It may carry arguments, e.g. "code --wait".
	Editor string

	// Getenv looks up EDITOR and VISUAL. Defaults to os.Getenv.
	Getenv func(string) string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// OpenWithOptions opens path with custom options and waits for the editor to exit.
func OpenWithOptions(path string, opts Options) error {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	argv, err := opts.resolve(getenv)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...) // #nosec G204 -- editor is validated against PATH
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if opts.Stdin != nil {
		cmd.Stdin = opts.Stdin
	}
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	}
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", argv[0], err)
	}
	return nil
}

// resolve returns the editor command line to run. An explicit Editor is never
// replaced by detection: if it is rejected, the error names it.
func (o Options) resolve(getenv func(string) string) ([]string, error) {
	if o.Editor != "" {
		if argv := validate(o.Editor); argv != nil {
			return argv, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrInvalidEditor, o.Editor)
	}
	for _, key := range []string{"EDITOR", "VISUAL"} {
		if argv := validate(getenv(key)); argv != nil {
			return argv, nil
		}
	}
	for _, candidate := range candidates {
		if _, err := exec.LookPath(candidate); err == nil {
			return []string{candidate}, nil
		}
	}
	return nil, ErrNoEditor
}

// validate splits an editor command line and checks its program.
// Only simple command names found in PATH and absolute paths to executables
// are accepted.
func validate(value string) []string {
	if value == "" {
		return nil
	}
	argv, err := shellquote.Split(value)
	if err != nil || len(argv) == 0 {
		return nil
	}

	program := argv[0]
	if !filepath.IsAbs(program) {
		if containsPathSeparator(program) || !editorNamePattern.MatchString(program) {
			return nil
		}
	}
	if _, err := exec.LookPath(program); err != nil {
		return nil
	}
	return argv
}

// containsPathSeparator checks if s contains OS-specific path separators.
func containsPathSeparator(s string) bool {
	for _, c := range s {
		if c == '/' || c == filepath.Separator {
			return true
		}
	}
	return false
}
