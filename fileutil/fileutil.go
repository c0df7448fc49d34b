// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fileutil provides file helpers for creating flags files safely.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// File permissions
const (
	// DirPermission is the default permission for creating directories (rwxr-x---)
	DirPermission = 0750
	// FilePermission is the default permission for creating files (rw-r--r--)
	FilePermission = 0644
)

// renameAttempts bounds the retries for a transient rename failure.
const renameAttempts = 5

// AtomicWriteFile writes raw bytes to a file atomically.
// It writes to a temporary file in the same directory, then renames it to the
// target path, so readers never observe a partially written file.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = tmpFile.Close() }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// CreateTemp uses 0600; apply the requested mode before the file becomes visible.
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	var renameErr error
	for attempt := 0; attempt < renameAttempts; attempt++ {
		renameErr = os.Rename(tmpPath, path)
		if renameErr == nil {
			break
		}
		if attempt < renameAttempts-1 {
			time.Sleep(time.Duration(20*(attempt+1)) * time.Millisecond)
		}
	}
	if renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", renameErr)
	}

	return nil
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, DirPermission); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// Exists reports whether path exists. Errors other than "not found" are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// CreateIfMissing writes content to path, creating parent directories, unless
// the file already exists. It reports whether the file was created.
func CreateIfMissing(path string, content []byte) (bool, error) {
	exists, err := Exists(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if exists {
		return false, nil
	}

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return false, err
	}
	if err := AtomicWriteFile(path, content, FilePermission); err != nil {
		return false, err
	}
	return true, nil
}
