//go:build !windows
// +build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"golang.org/x/sys/unix"
)

// Replace replaces the current process image with the program at path.
// It does not return on success. argv[0] is passed through as given.
func Replace(path string, argv []string, envv []string) error {
	return unix.Exec(path, argv, envv)
}
