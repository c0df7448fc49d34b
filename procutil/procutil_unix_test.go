//go:build !windows
// +build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestReplaceMissingBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-browser")

	err := Replace(path, []string{path}, os.Environ())
	if err == nil {
		t.Fatal("expected Replace to fail for a missing binary")
	}
	if !errors.Is(err, syscall.ENOENT) {
		t.Errorf("expected ENOENT, got %v", err)
	}
}

func TestReplaceNotExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-executable")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Replace(path, []string{path}, nil)
	if err == nil {
		t.Fatal("expected Replace to fail for a non-executable file")
	}
	if !errors.Is(err, syscall.EACCES) {
		t.Errorf("expected EACCES, got %v", err)
	}
}
