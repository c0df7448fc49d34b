// Package testutil provides common testing utilities: capturing command output
// and writing flags files into per-test directories.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/baikal-linux/chromium-launcher/cliout"
)

// CaptureOutput captures everything written through cliout while fn runs.
// Color is disabled so assertions can match plain text. The previous writer is
// always restored, even if fn returns an error.
//
// Example:
//
//	output, err := testutil.CaptureOutput(t, func() error {
//	    return cmd.Execute()
//	})
func CaptureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	prev := cliout.SetOutput(&buf)
	cliout.NoColor()
	defer cliout.SetOutput(prev)

	err := fn()
	return buf.String(), err
}

// WriteFile writes content to name inside dir and returns the full path.
// The test fails immediately if the file cannot be written.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
