package settle

import (
	"fmt"
	"sort"

	"github.com/dshills/settle/internal/source"
)

// Setting defines a named setting with its default value and metadata.
type Setting struct {
	// Name is the setting name. Names follow the uppercase convention:
	// at least one letter and no lowercase letters.
	Name string

	// Default is the value used when no override supplies the name.
	Default Value

	// Description is human-readable documentation.
	Description string

	// Deprecated marks settings that should be migrated.
	Deprecated bool

	// ReplacedBy names the setting that supersedes a deprecated one.
	ReplacedBy string
}

// Catalog is an immutable set of setting definitions used as the defaults
// side of resolution. A caller-supplied catalog replaces the built-in set
// wholesale; catalogs are never merged.
type Catalog struct {
	settings map[string]Setting
	names    []string
}

// NewCatalog builds a catalog from the given settings. It fails if a name
// is duplicated or does not follow the uppercase naming convention.
func NewCatalog(settings ...Setting) (*Catalog, error) {
	c := &Catalog{
		settings: make(map[string]Setting, len(settings)),
		names:    make([]string, 0, len(settings)),
	}
	for _, s := range settings {
		if !source.IsSettingName(s.Name) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSettingName, s.Name)
		}
		if _, exists := c.settings[s.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSetting, s.Name)
		}
		c.settings[s.Name] = s
		c.names = append(c.names, s.Name)
	}
	sort.Strings(c.names)
	return c, nil
}

// MustCatalog builds a catalog and panics on error. Useful for defining
// catalogs at package level.
func MustCatalog(settings ...Setting) *Catalog {
	c, err := NewCatalog(settings...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the setting definition for the given name.
func (c *Catalog) Get(name string) (Setting, bool) {
	s, ok := c.settings[name]
	return s, ok
}

// Has reports whether a setting is defined.
func (c *Catalog) Has(name string) bool {
	_, ok := c.settings[name]
	return ok
}

// Names returns all defined setting names sorted alphabetically.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of defined settings.
func (c *Catalog) Len() int {
	return len(c.settings)
}

// Deprecated returns all deprecated settings sorted by name.
func (c *Catalog) Deprecated() []Setting {
	var out []Setting
	for _, name := range c.names {
		if s := c.settings[name]; s.Deprecated {
			out = append(out, s)
		}
	}
	return out
}
