// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package security checks the flags files for permissions that would let other
// users inject browser flags.
package security

import (
	"errors"
	"fmt"
	"os"
	"runtime"
)

// ErrInsecureFilePermissions indicates a file is writable by group or others.
var ErrInsecureFilePermissions = errors.New("file is writable by group or others")

// ValidateFilePermissions checks if a file has secure permissions.
// On Unix systems, it ensures the file is not group- or world-writable.
// On Windows, this check is skipped as Windows uses ACLs differently.
// A missing file is reported through the returned error; callers that treat
// missing flags files as normal should check os.IsNotExist first.
func ValidateFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if info.Mode().Perm()&0o022 != 0 {
		return fmt.Errorf("%w: %s (%s)", ErrInsecureFilePermissions, path, info.Mode().Perm())
	}

	return nil
}
