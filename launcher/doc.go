// Package launcher assembles and performs the Chromium launch.
//
// A launch happens in four steps, each a separate function so the first three can
// be inspected and tested without replacing the process:
//
//  1. DefaultConfig resolves the binary and the two flags file locations.
//  2. Build loads the system flags file, then the user flags file.
//  3. Build also merges the default environment into a copy of the caller's.
//  4. Exec replaces the current process with the browser.
//
// The resulting argument vector is always
//
//	[binary, system flags..., user flags..., caller arguments...]
//
// so flags given on the command line come last and, for Chromium, win.
package launcher
