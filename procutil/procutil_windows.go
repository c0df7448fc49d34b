//go:build windows
// +build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

// Replace is not available on Windows, which has no execve equivalent.
func Replace(_ string, _ []string, _ []string) error {
	return ErrUnsupported
}
