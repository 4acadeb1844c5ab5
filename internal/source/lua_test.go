package source

import (
	"reflect"
	"strings"
	"testing"
)

func TestLoadLua(t *testing.T) {
	path := writeFile(t, "settings.lua", `
local base_port = 9000

DEBUG = true
BIND_PORT = base_port
RATIO = 0.25
NAME = string.lower("SVC")
ALLOWED_HOSTS = {"a.example.com", "b.example.com"}
DATABASES = {default = {ENGINE = "postgres"}}
helper = "ignored"
GREET = function() return "hi" end
`)

	got, err := LoadLua(path)
	if err != nil {
		t.Fatalf("LoadLua() error = %v", err)
	}

	want := map[string]any{
		"DEBUG":         true,
		"BIND_PORT":     int64(9000),
		"RATIO":         0.25,
		"NAME":          "svc",
		"ALLOWED_HOSTS": []any{"a.example.com", "b.example.com"},
		"DATABASES": map[string]any{
			"default": map[string]any{
				"ENGINE": "postgres",
			},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadLua() = %v, want %v", got, want)
	}
}

func TestLoadLuaSandbox(t *testing.T) {
	path := writeFile(t, "sandbox.lua", `
HAS_OS = os ~= nil
HAS_IO = io ~= nil
HAS_DOFILE = dofile ~= nil
HAS_LOADSTRING = loadstring ~= nil
HAS_MATH = math ~= nil
`)

	got, err := LoadLua(path)
	if err != nil {
		t.Fatalf("LoadLua() error = %v", err)
	}

	want := map[string]any{
		"HAS_OS":         false,
		"HAS_IO":         false,
		"HAS_DOFILE":     false,
		"HAS_LOADSTRING": false,
		"HAS_MATH":       true,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadLua() = %v, want %v", got, want)
	}
}

func TestLoadLuaBaselineGlobalsExcluded(t *testing.T) {
	path := writeFile(t, "empty.lua", `DEBUG = false`)

	got, err := LoadLua(path)
	if err != nil {
		t.Fatalf("LoadLua() error = %v", err)
	}

	want := map[string]any{"DEBUG": false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadLua() = %v, want %v", got, want)
	}
}

func TestLoadLuaError(t *testing.T) {
	path := writeFile(t, "broken.lua", `DEBUG = = true`)

	if _, err := LoadLua(path); err == nil {
		t.Fatal("LoadLua() error = nil, want error")
	}
}

func TestLoadLuaRuntimeError(t *testing.T) {
	path := writeFile(t, "runtime.lua", `error("boom")`)

	if _, err := LoadLua(path); err == nil {
		t.Fatal("LoadLua() error = nil, want error")
	}
}

func TestLoadLuaArrayWithFunction(t *testing.T) {
	path := writeFile(t, "badlist.lua", `HOOKS = {function() end}`)

	_, err := LoadLua(path)
	if err == nil {
		t.Fatal("LoadLua() error = nil, want error for function in list")
	}
	if !strings.Contains(err.Error(), "unsupported value at index 1") {
		t.Errorf("LoadLua() error = %v, want mention of unsupported value", err)
	}
}

func TestLoadLuaNonStringTableKey(t *testing.T) {
	path := writeFile(t, "badmap.lua", `OPTIONS = {[true] = 1}`)

	_, err := LoadLua(path)
	if err == nil {
		t.Fatal("LoadLua() error = nil, want error for non-string table key")
	}
	if !strings.Contains(err.Error(), "is not a string") {
		t.Errorf("LoadLua() error = %v, want mention of non-string key", err)
	}
}
