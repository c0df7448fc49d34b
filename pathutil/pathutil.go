// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package pathutil locates executables, either on the current PATH or on the
// PATH of the environment the browser will be launched with.
package pathutil

import (
	"os"
	"path/filepath"
)

// systemSearchPaths are checked when a tool is not on PATH.
var systemSearchPaths = []string{
	"/usr/local/bin",
	"/usr/bin",
	"/bin",
	"/usr/local/sbin",
	"/usr/sbin",
}

// FindToolInPathList searches the directories of pathList, a PATH-style list,
// for an executable named toolName. Empty entries are skipped.
// Returns the full path to the executable if found, empty string otherwise.
func FindToolInPathList(toolName, pathList string) string {
	for _, dir := range filepath.SplitList(pathList) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, toolName)
		if IsExecutable(candidate) {
			return candidate
		}
	}
	return ""
}

// SearchToolInSystemPath searches for a tool in common system directories.
// This is useful for finding tools that are installed but not in the current PATH.
func SearchToolInSystemPath(toolName string) string {
	for _, dir := range systemSearchPaths {
		candidate := filepath.Join(dir, toolName)
		if IsExecutable(candidate) {
			return candidate
		}
	}
	return ""
}

// IsExecutable reports whether path is a regular file with an execute bit set.
func IsExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}
