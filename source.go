package settle

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dshills/settle/internal/source"
)

// Loader reads a designated settings source.
//
// Load returns the settings the source declares: a mapping of uppercase
// names to decoded values. Implementations skip names that do not follow
// the uppercase convention; those are module-local helpers, not settings.
// Load is invoked at most once per successful resolution.
type Loader interface {
	Load(id string) (map[string]any, error)
}

// FileLoader loads settings modules from the file system, dispatching on
// the file extension. Supported formats: TOML (.toml), YAML (.yaml, .yml),
// JSON (.json), and Lua modules (.lua).
//
// Lua modules are evaluated in a restricted interpreter and their uppercase
// globals become settings; see the internal loader for the exact rules.
type FileLoader struct{}

// Load reads and decodes the settings file at path.
func (FileLoader) Load(path string) (map[string]any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return source.LoadTOML(path)
	case ".yaml", ".yml":
		return source.LoadYAML(path)
	case ".json":
		return source.LoadJSON(path)
	case ".lua":
		return source.LoadLua(path)
	default:
		return nil, fmt.Errorf("unsupported settings format %q", filepath.Ext(path))
	}
}

// MapLoader serves in-memory settings keyed by source identifier. It is
// useful in tests and for settings compiled into the binary.
type MapLoader map[string]map[string]any

// Load returns the mapping registered under id. Names that do not follow
// the uppercase convention are skipped.
func (m MapLoader) Load(id string) (map[string]any, error) {
	src, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("no settings registered for source %q", id)
	}
	out := make(map[string]any, len(src))
	for name, v := range src {
		if source.IsSettingName(name) {
			out[name] = v
		}
	}
	return out, nil
}
