// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/v4/process"
)

// ErrUnsupported is returned by Replace on platforms without process replacement.
var ErrUnsupported = errors.New("process replacement is not supported on this platform")

// Info describes a running process.
type Info struct {
	PID     int32  `json:"pid" yaml:"pid"`
	Name    string `json:"name" yaml:"name"`
	Cmdline string `json:"cmdline" yaml:"cmdline"`
}

// IsProcessRunning checks if a process with the given PID is running.
func IsProcessRunning(pid int) bool {
	if pid <= 0 || pid > int(^uint32(0)>>1) {
		return false
	}

	exists, err := process.PidExists(int32(pid)) // #nosec G115 - bounds checked above
	if err != nil {
		return false
	}
	return exists
}

// FindProcessesByName returns running processes whose executable name equals name,
// ordered by PID. Processes that exit or deny access while being inspected are skipped.
func FindProcessesByName(ctx context.Context, name string) ([]Info, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var result []Info
	for _, p := range procs {
		procName, err := p.NameWithContext(ctx)
		if err != nil || procName != name {
			continue
		}

		cmdline, _ := p.CmdlineWithContext(ctx)
		result = append(result, Info{PID: p.Pid, Name: procName, Cmdline: cmdline})
	}

	sort.Slice(result, func(i, j int) bool { return result[i].PID < result[j].PID })
	return result, nil
}
