package settle

import "sort"

// Origin identifies where a resolved value came from.
type Origin uint8

const (
	// OriginDefault indicates the value is the defaults catalog entry.
	OriginDefault Origin = iota
	// OriginOverride indicates an override replaced a catalog default.
	OriginOverride
	// OriginCustom indicates the name is absent from the defaults catalog.
	OriginCustom
)

// String returns the string representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginDefault:
		return "default"
	case OriginOverride:
		return "override"
	case OriginCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Delta describes a setting whose resolved value differs from its default.
type Delta struct {
	// Name is the setting name.
	Name string
	// Default is the defaults catalog value.
	Default Value
	// Resolved is the value in the resolved namespace.
	Resolved Value
}

// namespace is the result of resolution. It is never mutated after
// resolveNamespace returns.
type namespace struct {
	values   map[string]Value
	origins  map[string]Origin
	defaults map[string]Value
}

// resolveNamespace merges overrides over the defaults catalog. Every
// catalog name is seeded with its default value; overrides then replace
// defaults unconditionally (a zero or empty override wins), and names
// absent from the catalog are added as custom settings.
func resolveNamespace(defaults *Catalog, overrides map[string]Value) *namespace {
	ns := &namespace{
		values:   make(map[string]Value, defaults.Len()+len(overrides)),
		origins:  make(map[string]Origin, defaults.Len()+len(overrides)),
		defaults: make(map[string]Value, defaults.Len()),
	}

	for name, s := range defaults.settings {
		ns.values[name] = s.Default
		ns.origins[name] = OriginDefault
		ns.defaults[name] = s.Default
	}

	for name, v := range overrides {
		if _, ok := ns.defaults[name]; ok {
			ns.origins[name] = OriginOverride
		} else {
			ns.origins[name] = OriginCustom
		}
		ns.values[name] = v
	}

	return ns
}

// get returns the value for name.
func (n *namespace) get(name string) (Value, error) {
	v, ok := n.values[name]
	if !ok {
		return Value{}, &UnknownSettingError{Name: name}
	}
	return v, nil
}

// origin returns the provenance for name.
func (n *namespace) origin(name string) (Origin, error) {
	o, ok := n.origins[name]
	if !ok {
		return 0, &UnknownSettingError{Name: name}
	}
	return o, nil
}

// names returns the resolved setting names sorted alphabetically.
func (n *namespace) names() []string {
	out := make([]string, 0, len(n.values))
	for name := range n.values {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// diff enumerates the catalog names whose resolved value differs
// structurally from the default, sorted by name. Custom names are not
// included.
func (n *namespace) diff() []Delta {
	var deltas []Delta
	for name, def := range n.defaults {
		if cur := n.values[name]; !cur.Equal(def) {
			deltas = append(deltas, Delta{Name: name, Default: def, Resolved: cur})
		}
	}
	sort.Slice(deltas, func(i, j int) bool {
		return deltas[i].Name < deltas[j].Name
	})
	return deltas
}
