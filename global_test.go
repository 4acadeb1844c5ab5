package settle

import (
	"errors"
	"testing"
)

// The process-wide instance resolves once per process, so everything about
// it is exercised in a single ordered test.
func TestPackageLevelSettings(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() = nil")
	}
	if Default() != Default() {
		t.Error("Default() returned different instances")
	}
	if IsConfigured() {
		t.Fatal("IsConfigured() = true before Configure, want false")
	}
	if _, err := Get("DEBUG"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Get() before Configure error = %v, want ErrNotConfigured", err)
	}

	err := Configure(map[string]Value{
		"DEBUG":     Bool(true),
		"BIND_PORT": Int(9000),
		"API_TOKEN": String("tok"),
	})
	if err != nil {
		t.Fatalf("Configure() error = %v", err)
	}

	if !IsConfigured() {
		t.Error("IsConfigured() = false after Configure, want true")
	}
	if got, err := GetBool("DEBUG"); err != nil || !got {
		t.Errorf("GetBool(DEBUG) = %v, %v, want true, nil", got, err)
	}
	if got, err := GetInt("BIND_PORT"); err != nil || got != 9000 {
		t.Errorf("GetInt(BIND_PORT) = %v, %v, want 9000, nil", got, err)
	}
	if got, err := GetFloat("BIND_PORT"); err != nil || got != 9000.0 {
		t.Errorf("GetFloat(BIND_PORT) = %v, %v, want 9000, nil", got, err)
	}
	if got, err := GetString("API_TOKEN"); err != nil || got != "tok" {
		t.Errorf("GetString(API_TOKEN) = %q, %v, want \"tok\", nil", got, err)
	}
	if got, err := GetString("TIME_ZONE"); err != nil || got != "UTC" {
		t.Errorf("GetString(TIME_ZONE) = %q, %v, want default \"UTC\", nil", got, err)
	}
	if got, err := GetStringSlice("ALLOWED_HOSTS"); err != nil || len(got) != 0 {
		t.Errorf("GetStringSlice(ALLOWED_HOSTS) = %v, %v, want empty default, nil", got, err)
	}
	if m, err := GetMap("DATABASES"); err != nil || len(m) == 0 {
		t.Errorf("GetMap(DATABASES) = %v, %v, want default aliases, nil", m, err)
	}
	if v, err := Get("DEBUG"); err != nil || v.Kind() != KindBool {
		t.Errorf("Get(DEBUG) = %v, %v, want boolean, nil", v, err)
	}

	deltas, err := Diff()
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	changed := make(map[string]bool, len(deltas))
	for _, d := range deltas {
		changed[d.Name] = true
	}
	if !changed["DEBUG"] || !changed["BIND_PORT"] {
		t.Errorf("Diff() = %v, want DEBUG and BIND_PORT listed", deltas)
	}
	if changed["API_TOKEN"] {
		t.Errorf("Diff() = %v, want custom API_TOKEN excluded", deltas)
	}

	if err := Configure(nil); !errors.Is(err, ErrAlreadyConfigured) {
		t.Errorf("second Configure() error = %v, want ErrAlreadyConfigured", err)
	}
	if err := DesignateSource("app.toml"); !errors.Is(err, ErrAlreadyConfigured) {
		t.Errorf("DesignateSource() after Configure error = %v, want ErrAlreadyConfigured", err)
	}
}
