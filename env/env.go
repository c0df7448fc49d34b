package env

import (
	"sort"
	"strings"
)

// Names of the variables the launcher provides defaults for.
const (
	KeyChromeWrapper            = "CHROME_WRAPPER"
	KeyChromeDesktop            = "CHROME_DESKTOP"
	KeyChromeVersionExtra       = "CHROME_VERSION_EXTRA"
	KeyLibvaDriverName          = "LIBVA_DRIVER_NAME"
	KeyLibvaDriversPath         = "LIBVA_DRIVERS_PATH"
	KeyLibvaMessagingLevel      = "LIBVA_MESSAGING_LEVEL"
	KeyMesaLoaderDriverOverride = "MESA_LOADER_DRIVER_OVERRIDE"
	KeyMallocArenaMax           = "MALLOC_ARENA_MAX"
	KeyMesaGLThread             = "MESA_GLTHREAD"
	KeyChromiumFlags            = "CHROMIUM_FLAGS"
)

// Default is a variable that is set only when the caller has not set it.
type Default struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Defaults returns the launcher's default variables in a stable order.
// wrapper is the path the launcher was invoked as.
func Defaults(wrapper string) []Default {
	return []Default{
		// Desktop integration
		{Key: KeyChromeWrapper, Value: wrapper},
		{Key: KeyChromeDesktop, Value: "chromium.desktop"},
		{Key: KeyChromeVersionExtra, Value: "Arch Linux (Baikal)"},

		// VA-API on the AMD RX550
		{Key: KeyLibvaDriverName, Value: "radeonsi"},
		{Key: KeyLibvaDriversPath, Value: "/usr/lib/dri"},
		{Key: KeyLibvaMessagingLevel, Value: "1"},
		{Key: KeyMesaLoaderDriverOverride, Value: "radeonsi"},

		// Memory and GL threading on Baikal-M
		{Key: KeyMallocArenaMax, Value: "2"},
		{Key: KeyMesaGLThread, Value: "true"},

		{Key: KeyChromiumFlags, Value: "--disable-gpu-sandbox"},
	}
}

// WithDefaults returns a copy of base with every default whose key is absent added.
// base is not modified.
func WithDefaults(base map[string]string, defaults []Default) map[string]string {
	result := copyEnv(base)
	for _, d := range defaults {
		if _, exists := result[d.Key]; !exists {
			result[d.Key] = d.Value
		}
	}
	return result
}

// Origin tells where the effective value of a default came from.
type Origin string

const (
	// OriginInherited means the caller's environment already had the variable.
	OriginInherited Origin = "inherited"
	// OriginDefault means the launcher injected the default value.
	OriginDefault Origin = "default"
)

// Resolved is the effective value of a default after merging.
type Resolved struct {
	Key     string `json:"key" yaml:"key"`
	Value   string `json:"value" yaml:"value"`
	Default string `json:"default" yaml:"default"`
	Origin  Origin `json:"origin" yaml:"origin"`
}

// Resolve reports, for each default, the value the browser will see and its origin.
func Resolve(base map[string]string, defaults []Default) []Resolved {
	result := make([]Resolved, 0, len(defaults))
	for _, d := range defaults {
		r := Resolved{Key: d.Key, Value: d.Value, Default: d.Value, Origin: OriginDefault}
		if v, exists := base[d.Key]; exists {
			r.Value = v
			r.Origin = OriginInherited
		}
		result = append(result, r)
	}
	return result
}

// MapToSlice converts an env map into KEY=VALUE entries sorted by key.
func MapToSlice(env map[string]string) []string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(env))
	for _, k := range keys {
		result = append(result, k+"="+env[k])
	}
	return result
}

// SliceToMap converts KEY=VALUE entries into a map, skipping malformed rows.
// When a key repeats, the last entry wins.
func SliceToMap(envSlice []string) map[string]string {
	result := make(map[string]string, len(envSlice))
	for _, envVar := range envSlice {
		key, value, ok := strings.Cut(envVar, "=")
		if !ok || key == "" {
			continue
		}
		result[key] = value
	}
	return result
}

// FilterByPrefix returns the variables whose name starts with prefix.
// The prefix matching is case-insensitive for keys.
func FilterByPrefix(envVars map[string]string, prefix string) map[string]string {
	result := make(map[string]string)
	prefixUpper := strings.ToUpper(prefix)

	for k, v := range envVars {
		if strings.HasPrefix(strings.ToUpper(k), prefixUpper) {
			result[k] = v
		}
	}

	return result
}

func copyEnv(env map[string]string) map[string]string {
	clone := make(map[string]string, len(env))
	for k, v := range env {
		clone[k] = v
	}
	return clone
}
