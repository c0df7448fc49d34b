// Package env builds the environment handed to the browser process.
//
// The launcher never mutates the process environment. Instead it copies it into a
// map, merges a fixed list of defaults into the copy, and converts the result back
// into KEY=VALUE form only at the moment of process replacement.
//
// # Defaults
//
// Defaults are applied with "set if absent" semantics: a variable already present
// in the caller's environment, even with an empty value, is left untouched.
//
//	base := env.SliceToMap(os.Environ())
//	merged := env.WithDefaults(base, env.Defaults(os.Args[0]))
//	// merged["LIBVA_DRIVER_NAME"] == "radeonsi" unless the caller set it
//
// # Helper Functions
//
//   - MapToSlice: Convert map[string]string to sorted []string (KEY=VALUE format)
//   - SliceToMap: Convert []string to map[string]string (skips malformed entries)
//   - FilterByPrefix: Select variables whose name starts with a prefix
//   - Resolve: Report the effective value and origin of every default
package env
