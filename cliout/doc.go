// Package cliout provides structured output formatting for the chromium-flags tool.
//
// It supports human-readable text, JSON and YAML. Human-readable output uses ANSI
// colors only when stdout is a terminal and NO_COLOR is unset.
//
//	if err := cliout.SetFormat("yaml"); err != nil {
//	    return err
//	}
//	return cliout.Print(plan, func() {
//	    cliout.Header("Launch plan")
//	    cliout.Label("Binary", plan.Binary)
//	})
package cliout
