package flags

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/kballard/go-shellquote"
)

// commentPrefix marks a line that is ignored.
const commentPrefix = "#"

var (
	// ErrInvalidEncoding indicates a line that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
	// ErrTokenize indicates a line that cannot be split into shell words.
	ErrTokenize = errors.New("cannot split line into shell words")
)

// LineError describes a failure on a specific line of a flags file.
type LineError struct {
	Name string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Name, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Load reads flags from the file at path.
// A file that does not exist yields an empty, non-nil slice and no error.
func Load(path string) ([]string, error) {
	file, err := os.Open(path) // #nosec G304 - path is one of the fixed flags locations
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to open flags file: %w", err)
	}
	defer file.Close()

	return Parse(file, path)
}

// Parse reads flags from r using the flags file rules. name is used in error messages.
// Lines may be of any length and end in "\n", "\r\n" or a lone "\r".
func Parse(r io.Reader, name string) ([]string, error) {
	result := []string{}
	reader := bufio.NewReader(r)

	lineNo := 0
	for {
		chunk, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("failed to read %s: %w", name, readErr)
		}

		if chunk != "" {
			for _, raw := range splitLines(chunk) {
				lineNo++
				words, err := parseLine(raw)
				if err != nil {
					return nil, &LineError{Name: name, Line: lineNo, Err: err}
				}
				result = append(result, words...)
			}
		}

		if readErr != nil {
			return result, nil
		}
	}
}

// splitLines breaks a chunk ending in at most one "\n" into lines, treating
// "\r\n" and a lone "\r" as terminators.
func splitLines(chunk string) []string {
	chunk = strings.TrimSuffix(chunk, "\n")
	chunk = strings.TrimSuffix(chunk, "\r")
	return strings.Split(chunk, "\r")
}

// parseLine returns the shell words of one line, or none for blanks and comments.
func parseLine(raw string) ([]string, error) {
	if !utf8.ValidString(raw) {
		return nil, ErrInvalidEncoding
	}

	line := strings.TrimSpace(raw)
	if line == "" || strings.HasPrefix(line, commentPrefix) {
		return nil, nil
	}

	words, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenize, err)
	}
	return words, nil
}
