// Package cmdutil runs short-lived helper commands, such as vainfo or
// "chromium --version", with an explicit environment and a timeout.
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// DefaultTimeout bounds helper commands that are not given their own timeout.
const DefaultTimeout = 15 * time.Second

// ErrTimeout is returned when a command does not finish within its timeout.
var ErrTimeout = errors.New("command timed out")

// RunCommandWithEnv runs a command with exactly the given environment (KEY=VALUE
// entries) and returns its combined output. A nil env is treated as empty, not
// inherited. A zero timeout means DefaultTimeout.
func RunCommandWithEnv(ctx context.Context, name string, args []string, env []string, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if env == nil {
		env = []string{}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	// Children of the command may keep the output pipes open after it is killed.
	cmd.WaitDelay = time.Second

	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return output, fmt.Errorf("%s: %w after %s", name, ErrTimeout, timeout)
		}
		return output, fmt.Errorf("command failed: %w", err)
	}

	return output, nil
}
