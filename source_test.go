package settle

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettingsFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestFileLoaderFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "settings.toml", `
DEBUG = true
BIND_PORT = 9000
STATIC_URL = "/assets/"
ALLOWED_HOSTS = ["a.example.com"]
`},
		{"yaml", "settings.yaml", `
DEBUG: true
BIND_PORT: 9000
STATIC_URL: /assets/
ALLOWED_HOSTS:
  - a.example.com
`},
		{"yml", "settings.yml", `
DEBUG: true
BIND_PORT: 9000
STATIC_URL: /assets/
ALLOWED_HOSTS: [a.example.com]
`},
		{"json", "settings.json", `{
  "DEBUG": true,
  "BIND_PORT": 9000,
  "STATIC_URL": "/assets/",
  "ALLOWED_HOSTS": ["a.example.com"]
}`},
		{"lua", "settings.lua", `
DEBUG = true
BIND_PORT = 9000
STATIC_URL = "/assets/"
ALLOWED_HOSTS = {"a.example.com"}
`},
		{"uppercase extension", "settings.TOML", `
DEBUG = true
BIND_PORT = 9000
STATIC_URL = "/assets/"
ALLOWED_HOSTS = ["a.example.com"]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettingsFile(t, tt.file, tt.content)

			s := New()
			if err := s.DesignateSource(path); err != nil {
				t.Fatalf("DesignateSource() error = %v", err)
			}

			if got, err := s.GetBool("DEBUG"); err != nil || !got {
				t.Errorf("GetBool(DEBUG) = %v, %v, want true, nil", got, err)
			}
			if got, err := s.GetInt("BIND_PORT"); err != nil || got != 9000 {
				t.Errorf("GetInt(BIND_PORT) = %v, %v, want 9000, nil", got, err)
			}
			if got, err := s.GetString("STATIC_URL"); err != nil || got != "/assets/" {
				t.Errorf("GetString(STATIC_URL) = %q, %v, want \"/assets/\", nil", got, err)
			}
			hosts, err := s.GetStringSlice("ALLOWED_HOSTS")
			if err != nil || len(hosts) != 1 || hosts[0] != "a.example.com" {
				t.Errorf("GetStringSlice(ALLOWED_HOSTS) = %v, %v, want one host, nil", hosts, err)
			}
			if got, err := s.GetString("TIME_ZONE"); err != nil || got != "UTC" {
				t.Errorf("GetString(TIME_ZONE) = %q, %v, want default \"UTC\", nil", got, err)
			}
		})
	}
}

func TestFileLoaderUnsupportedFormat(t *testing.T) {
	path := writeSettingsFile(t, "settings.ini", "DEBUG=true\n")

	s := New()
	if err := s.DesignateSource(path); err != nil {
		t.Fatalf("DesignateSource() error = %v", err)
	}

	_, err := s.Get("DEBUG")
	if err == nil {
		t.Fatal("Get() error = nil, want unsupported format error")
	}
	if !errors.Is(err, ErrSourceLoad) {
		t.Errorf("Get() error = %v, want ErrSourceLoad", err)
	}
	if !strings.Contains(err.Error(), "unsupported settings format") {
		t.Errorf("Get() error = %v, want unsupported format message", err)
	}
}

func TestFileLoaderMissingFile(t *testing.T) {
	s := New()
	path := filepath.Join(t.TempDir(), "absent.toml")
	if err := s.DesignateSource(path); err != nil {
		t.Fatalf("DesignateSource() error = %v", err)
	}

	_, err := s.Get("DEBUG")
	if err == nil {
		t.Fatal("Get() error = nil, want missing file error")
	}
	if !errors.Is(err, ErrSourceLoad) {
		t.Errorf("Get() error = %v, want ErrSourceLoad", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Get() error = %v, want fs.ErrNotExist in the chain", err)
	}
	if s.IsConfigured() {
		t.Error("IsConfigured() = true after missing file, want false")
	}
}

func TestMapLoader(t *testing.T) {
	loader := MapLoader{
		"app": {
			"DEBUG":     true,
			"BIND_PORT": int64(9000),
			"helper":    "ignored",
		},
	}

	s := New(WithLoader(loader))
	if err := s.DesignateSource("app"); err != nil {
		t.Fatalf("DesignateSource() error = %v", err)
	}

	if got, err := s.GetBool("DEBUG"); err != nil || !got {
		t.Errorf("GetBool(DEBUG) = %v, %v, want true, nil", got, err)
	}
	if got, err := s.GetInt("BIND_PORT"); err != nil || got != 9000 {
		t.Errorf("GetInt(BIND_PORT) = %v, %v, want 9000, nil", got, err)
	}
	if _, err := s.Get("helper"); !errors.Is(err, ErrUnknownSetting) {
		t.Errorf("Get(helper) error = %v, want lowercase names skipped", err)
	}
}

func TestMapLoaderUnknownID(t *testing.T) {
	s := New(WithLoader(MapLoader{}))
	if err := s.DesignateSource("absent"); err != nil {
		t.Fatalf("DesignateSource() error = %v", err)
	}

	_, err := s.Get("DEBUG")
	if err == nil {
		t.Fatal("Get() error = nil, want unknown source error")
	}
	if !errors.Is(err, ErrSourceLoad) {
		t.Errorf("Get() error = %v, want ErrSourceLoad", err)
	}
	if !strings.Contains(err.Error(), "absent") {
		t.Errorf("Get() error = %v, want the source id in the message", err)
	}
}
