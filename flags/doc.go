// Package flags loads browser command-line flags from plain-text configuration files.
//
// A flags file holds zero or more lines. Each line is trimmed; empty lines and lines
// whose first character is '#' are ignored. Every other line is split into words using
// POSIX shell rules, so quoting and escaping behave as they would in sh:
//
//	# /etc/chromium-flags.conf
//	--ozone-platform-hint=auto
//	--user-agent="Mozilla/5.0 (X11; Linux aarch64)"
//	--enable-features=VaapiVideoDecoder,VaapiIgnoreDriverChecks
//
// produces four flags, the second one with its embedded spaces preserved.
//
// # Error Handling
//
// A missing file is not an error: Load returns an empty slice. Any other failure,
// including unreadable files, invalid UTF-8 and unterminated quotes, is returned to
// the caller with the file name and line number attached.
package flags
