package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
	SymbolDot     = "•"
)

var (
	mu           sync.RWMutex
	globalFormat           = FormatDefault
	out          io.Writer = os.Stdout
	colorEnabled           = detectColor()
)

// detectColor enables color for interactive terminals unless NO_COLOR is set.
func detectColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) // #nosec G115 - file descriptors fit in int
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	colorEnabled = false
	mu.Unlock()
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	colorEnabled = true
	mu.Unlock()
}

// SetColorMode applies a --color setting: "auto" detects a terminal and honors
// NO_COLOR, "always" and "never" override detection.
func SetColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case "auto", "":
		enabled := detectColor()
		mu.Lock()
		colorEnabled = enabled
		mu.Unlock()
	case "always":
		ForceColor()
	case "never":
		NoColor()
	default:
		return fmt.Errorf("invalid color mode: %s (valid options: auto, always, never)", mode)
	}
	return nil
}

// SetOutput redirects all output to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	mu.Lock()
	defer mu.Unlock()

	switch strings.ToLower(format) {
	case "default", "":
		globalFormat = FormatDefault
	case "json":
		globalFormat = FormatJSON
	case "yaml", "yml":
		globalFormat = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsStructured returns true if the output format is JSON or YAML.
func IsStructured() bool {
	f := GetFormat()
	return f == FormatJSON || f == FormatYAML
}

func writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return out
}

func color(code string) (string, string) {
	mu.RLock()
	defer mu.RUnlock()
	if !colorEnabled {
		return "", ""
	}
	return code, Reset
}

// PrintJSON prints data as indented JSON.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(writer())
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML prints data as YAML.
func PrintYAML(data any) error {
	encoder := yaml.NewEncoder(writer())
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
func Print(data any, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	default:
		formatter()
		return nil
	}
}

// Header prints a bold header with a divider
func Header(text string) {
	on, off := color(Bold)
	fmt.Fprintf(writer(), "\n%s%s%s\n%s\n", on, text, off, strings.Repeat("=", len(text)))
}

// Success prints a success message with green checkmark
func Success(format string, args ...any) {
	line("", BrightGreen, SymbolCheck, format, args...)
}

// Error prints an error message with red X
func Error(format string, args ...any) {
	line("", BrightRed, SymbolCross, format, args...)
}

// Warning prints a warning message with yellow triangle
func Warning(format string, args ...any) {
	line("", BrightYellow, SymbolWarning, format, args...)
}

// Info prints an info message with blue info icon
func Info(format string, args ...any) {
	line("", BrightBlue, SymbolInfo, format, args...)
}

// ItemSuccess prints an indented success item
func ItemSuccess(format string, args ...any) {
	line("   ", Green, SymbolCheck, format, args...)
}

// ItemError prints an indented error item
func ItemError(format string, args ...any) {
	line("   ", Red, SymbolCross, format, args...)
}

// ItemWarning prints an indented warning item
func ItemWarning(format string, args ...any) {
	line("   ", Yellow, SymbolWarning, format, args...)
}

// ItemInfo prints an indented info item
func ItemInfo(format string, args ...any) {
	line("   ", Cyan, SymbolInfo, format, args...)
}

func line(indent, code, symbol, format string, args ...any) {
	on, off := color(code)
	fmt.Fprintf(writer(), "%s%s%s%s %s\n", indent, on, symbol, off, fmt.Sprintf(format, args...))
}

// Bullet prints a bulleted list item
func Bullet(format string, args ...any) {
	fmt.Fprintf(writer(), "  %s %s\n", SymbolDot, fmt.Sprintf(format, args...))
}

// Label prints a label and value pair
func Label(label, value string) {
	on, off := color(Dim)
	fmt.Fprintf(writer(), "   %s%-12s%s %s\n", on, label+":", off, value)
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...any) {
	fmt.Fprintf(writer(), format+"\n", args...)
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int)
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			if len(row[header]) > widths[header] {
				widths[header] = len(row[header])
			}
		}
	}

	w := writer()
	on, off := color(Bold)

	fmt.Fprint(w, "   ")
	for _, header := range headers {
		fmt.Fprintf(w, "%s%-*s%s  ", on, widths[header], header, off)
	}
	fmt.Fprintln(w)

	fmt.Fprint(w, "   ")
	for _, header := range headers {
		fmt.Fprint(w, strings.Repeat("─", widths[header])+"  ")
	}
	fmt.Fprintln(w)

	for _, row := range rows {
		fmt.Fprint(w, "   ")
		for _, header := range headers {
			fmt.Fprintf(w, "%-*s  ", widths[header], row[header])
		}
		fmt.Fprintln(w)
	}
}
