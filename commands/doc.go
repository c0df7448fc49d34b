// Package commands holds the entry points of the two binaries:
// chromium-launcher, which forwards every argument to Chromium without a
// command parser in the way, and the chromium-flags cobra tree, which inspects
// and edits the launch configuration without performing it.
package commands
