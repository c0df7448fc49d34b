package commands

import (
	"context"
	"errors"
	"os"

	"github.com/baikal-linux/chromium-launcher/launcher"
	"github.com/baikal-linux/chromium-launcher/logutil"
	"github.com/baikal-linux/chromium-launcher/notify"
)

// Launch runs the chromium-launcher binary: wrapper is its argv[0] and args are
// forwarded to Chromium verbatim. No argument is interpreted here, so words such
// as --help, help or completion reach the browser untouched. On success it does
// not return.
func Launch(wrapper string, args []string) error {
	logutil.SetupFromEnv(os.Getenv)
	logutil.NewLogger("launcher").Debug("launching", "wrapper", wrapper, "args", len(args))
	return launcher.Run(wrapper, args)
}

// ReportFatal logs err and, for launches without a visible terminal, shows it as a
// desktop notification.
func ReportFatal(err error) {
	attrs := []any{"error", err}
	var execErr *launcher.ExecError
	if errors.As(err, &execErr) {
		attrs = append(attrs, "binary", execErr.Path)
	}
	logutil.Error("chromium launch failed", attrs...)

	if !notify.Enabled(os.Getenv, notify.StderrIsTerminal()) {
		return
	}

	notifier := notify.New(notify.DefaultConfig())
	notification := notify.Notification{
		Title:    "Chromium failed to start",
		Message:  err.Error(),
		Severity: "critical",
	}
	if nerr := notifier.Send(context.Background(), notification); nerr != nil {
		logutil.Debug("desktop notification failed", "error", nerr)
	}
}
