// Package procutil provides process utilities for the Chromium launcher.
//
// # Key Features
//
//   - Process image replacement (Replace) on Unix-like systems
//   - Process existence checks and lookup by executable name, using gopsutil
//
// # Process Replacement
//
// Replace wraps execve(2). On success the calling program is gone and the call
// never returns; a returned error always means the replacement did not happen:
//
//	err := procutil.Replace("/usr/lib/chromium/chromium", argv, envv)
//	// only reached on failure
//	log.Fatal(err)
//
// On Windows there is no execve equivalent and Replace returns ErrUnsupported.
//
// # Process Lookup
//
// FindProcessesByName wraps github.com/shirou/gopsutil/v4/process and returns
// the processes whose executable name matches:
//
//	procs, err := procutil.FindProcessesByName(ctx, "chromium")
//	for _, p := range procs {
//	    fmt.Printf("%d %s\n", p.PID, p.Cmdline)
//	}
package procutil
