// Package notify shows desktop notifications for launch failures.
//
// The launcher is normally started from a .desktop entry, where nothing reads
// stderr. A failed launch would otherwise look like a click that did nothing.
package notify

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"golang.org/x/term"
)

// EnvNotify disables notifications when set to "false" or "0".
const EnvNotify = "CHROMIUM_LAUNCHER_NOTIFY"

// Notification represents a notification to be displayed.
type Notification struct {
	// Title is the notification title; Config.AppName is used when empty
	Title string

	// Message is the notification body
	Message string

	// Severity is "critical", "warning" or "info"
	Severity string
}

// Notifier sends notifications to the desktop.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}

// Config contains notification system configuration.
type Config struct {
	// AppName is the default notification title
	AppName string

	// Timeout for notification operations
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		AppName: "Chromium",
		Timeout: 5 * time.Second,
	}
}

// ErrTimeout is returned when the desktop does not accept a notification in time.
var ErrTimeout = errors.New("notification timeout")

// beeepNotifier implements Notifier using the cross-platform beeep library.
type beeepNotifier struct {
	config Config
}

// New creates a beeep-based notifier.
func New(config Config) Notifier {
	return &beeepNotifier{config: config}
}

// Send sends a notification using beeep. Critical notifications use beeep.Alert,
// which also plays the system alert sound.
func (n *beeepNotifier) Send(ctx context.Context, notification Notification) error {
	ctx, cancel := context.WithTimeout(ctx, n.config.Timeout)
	defer cancel()

	title := notification.Title
	if title == "" {
		title = n.config.AppName
	}

	done := make(chan error, 1)
	go func() {
		if notification.Severity == "critical" {
			done <- beeep.Alert(title, notification.Message, "")
			return
		}
		done <- beeep.Notify(title, notification.Message, "")
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ErrTimeout
	}
}

// Enabled reports whether a failure should be shown as a notification.
// Notifications are skipped when stderr is a terminal, since the user already
// sees the diagnostic there, and when EnvNotify is "false" or "0".
func Enabled(getenv func(string) string, stderrIsTerminal bool) bool {
	switch strings.ToLower(getenv(EnvNotify)) {
	case "false", "0":
		return false
	}
	return !stderrIsTerminal
}

// StderrIsTerminal reports whether os.Stderr is attached to a terminal.
func StderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd())) // #nosec G115 - file descriptors fit in int
}
