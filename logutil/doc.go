// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// Logs always go to stderr so they never mix with the output of the launched
// browser or of the inspection commands.
//
// # Basic Usage
//
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("loaded flags", "path", path, "count", len(flags))
//	logutil.Error("launch failed", "error", err)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set CHROMIUM_LAUNCHER_DEBUG=true
//
// # Component Loggers
//
//	log := logutil.NewLogger("launcher").WithOperation("build")
//	log.Debug("argv assembled", "argc", len(argv))
package logutil
