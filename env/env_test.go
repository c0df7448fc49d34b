package env

import (
	"reflect"
	"testing"
)

func TestMapToSliceAndBack(t *testing.T) {
	original := map[string]string{
		"A": "1",
		"B": "2",
	}

	slice := MapToSlice(original)
	roundTrip := SliceToMap(slice)

	if !reflect.DeepEqual(original, roundTrip) {
		t.Fatalf("round-trip env mismatch, got %v", roundTrip)
	}
}

func TestMapToSliceSorted(t *testing.T) {
	got := MapToSlice(map[string]string{"ZED": "z", "ALPHA": "a", "MID": "m=n"})
	want := []string{"ALPHA=a", "MID=m=n", "ZED=z"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MapToSlice() = %v, want %v", got, want)
	}
}

func TestSliceToMapSkipsMalformed(t *testing.T) {
	got := SliceToMap([]string{"GOOD=1", "NOEQUALS", "=nokey", "EMPTY=", "URL=a=b"})
	want := map[string]string{"GOOD": "1", "EMPTY": "", "URL": "a=b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SliceToMap() = %v, want %v", got, want)
	}
}

func TestSliceToMapLastWins(t *testing.T) {
	got := SliceToMap([]string{"A=first", "A=second"})
	if got["A"] != "second" {
		t.Fatalf("expected last entry to win, got %q", got["A"])
	}
}

func TestDefaults(t *testing.T) {
	defaults := Defaults("/usr/bin/chromium")

	want := map[string]string{
		KeyChromeWrapper:            "/usr/bin/chromium",
		KeyChromeDesktop:            "chromium.desktop",
		KeyChromeVersionExtra:       "Arch Linux (Baikal)",
		KeyLibvaDriverName:          "radeonsi",
		KeyLibvaDriversPath:         "/usr/lib/dri",
		KeyLibvaMessagingLevel:      "1",
		KeyMesaLoaderDriverOverride: "radeonsi",
		KeyMallocArenaMax:           "2",
		KeyMesaGLThread:             "true",
		KeyChromiumFlags:            "--disable-gpu-sandbox",
	}

	if len(defaults) != len(want) {
		t.Fatalf("expected %d defaults, got %d", len(want), len(defaults))
	}
	for _, d := range defaults {
		if want[d.Key] != d.Value {
			t.Errorf("default %s = %q, want %q", d.Key, d.Value, want[d.Key])
		}
	}
	if defaults[0].Key != KeyChromeWrapper {
		t.Errorf("expected %s first, got %s", KeyChromeWrapper, defaults[0].Key)
	}
}

func TestWithDefaults(t *testing.T) {
	base := map[string]string{
		"PATH":             "/usr/bin",
		KeyLibvaDriverName: "r600",
		KeyMesaGLThread:    "",
	}
	defaults := []Default{
		{Key: KeyLibvaDriverName, Value: "radeonsi"},
		{Key: KeyMesaGLThread, Value: "true"},
		{Key: KeyMallocArenaMax, Value: "2"},
	}

	got := WithDefaults(base, defaults)

	if got[KeyLibvaDriverName] != "r600" {
		t.Errorf("caller value overwritten: got %q", got[KeyLibvaDriverName])
	}
	if got[KeyMesaGLThread] != "" {
		t.Errorf("empty caller value overwritten: got %q", got[KeyMesaGLThread])
	}
	if got[KeyMallocArenaMax] != "2" {
		t.Errorf("absent default not injected: got %q", got[KeyMallocArenaMax])
	}
	if got["PATH"] != "/usr/bin" {
		t.Errorf("inherited variable lost: got %q", got["PATH"])
	}

	if _, exists := base[KeyMallocArenaMax]; exists {
		t.Error("WithDefaults modified its input map")
	}
}

func TestWithDefaultsNilBase(t *testing.T) {
	got := WithDefaults(nil, []Default{{Key: "X", Value: "1"}})
	if !reflect.DeepEqual(got, map[string]string{"X": "1"}) {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestResolve(t *testing.T) {
	base := map[string]string{KeyMallocArenaMax: "4"}
	defaults := []Default{
		{Key: KeyMallocArenaMax, Value: "2"},
		{Key: KeyMesaGLThread, Value: "true"},
	}

	got := Resolve(base, defaults)
	want := []Resolved{
		{Key: KeyMallocArenaMax, Value: "4", Default: "2", Origin: OriginInherited},
		{Key: KeyMesaGLThread, Value: "true", Default: "true", Origin: OriginDefault},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestFilterByPrefix(t *testing.T) {
	envVars := map[string]string{
		"LIBVA_DRIVER_NAME":  "radeonsi",
		"libva_messaging":    "1",
		"MESA_GLTHREAD":      "true",
		"LIBVA_DRIVERS_PATH": "/usr/lib/dri",
	}

	got := FilterByPrefix(envVars, "libva_")
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %v", got)
	}
	if _, ok := got["MESA_GLTHREAD"]; ok {
		t.Error("unexpected MESA_GLTHREAD match")
	}

	if got := FilterByPrefix(nil, "X"); len(got) != 0 {
		t.Errorf("expected empty result for nil map, got %v", got)
	}
}
