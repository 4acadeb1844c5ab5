package settle

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// State identifies a Settings instance's position in the configuration
// lifecycle. The lifecycle only moves forward: an instance that reaches
// StateConfigured never leaves it.
type State uint8

const (
	// StateUnconfigured means no source is designated and Configure has not
	// been called.
	StateUnconfigured State = iota
	// StateConfiguring means a source is designated but resolution has not
	// happened yet.
	StateConfiguring
	// StateConfigured means the namespace is resolved and reads are served
	// from it.
	StateConfigured
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfiguring:
		return "configuring"
	case StateConfigured:
		return "configured"
	default:
		return "unknown"
	}
}

// Settings provides lazy, one-shot access to resolved configuration.
//
// An instance starts unconfigured. DesignateSource records a source
// identifier and defers resolution to the first read; Configure resolves
// immediately from supplied values. Once resolved, the namespace is
// immutable and reads are served from it without further I/O.
//
// All methods are safe for concurrent use. Resolution runs at most once per
// instance under a single critical section; concurrent first reads observe
// the same namespace.
type Settings struct {
	mu sync.RWMutex

	state    State
	sourceID string
	ns       *namespace

	loader   Loader
	defaults *Catalog
	logger   *zap.Logger
}

// Option configures a Settings instance.
type Option func(*Settings)

// WithLoader sets the loader used to read a designated source.
func WithLoader(l Loader) Option {
	return func(s *Settings) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithDefaults replaces the built-in defaults catalog. The replacement is
// wholesale: names from the built-in set are not carried over.
func WithDefaults(c *Catalog) Option {
	return func(s *Settings) {
		if c != nil {
			s.defaults = c
		}
	}
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an unconfigured Settings instance with the given options.
// Without options it reads designated sources from the file system via
// FileLoader, resolves against Builtin(), and logs nowhere.
func New(opts ...Option) *Settings {
	s := &Settings{
		loader:   FileLoader{},
		defaults: Builtin(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DesignateSource records the identifier of the settings source to load on
// the first read. It performs no I/O; a missing or malformed source is not
// detected until resolution.
//
// Designation is permitted once per instance and only before Configure. A
// second call fails with ErrAlreadyConfigured regardless of whether
// resolution has happened yet.
func (s *Settings) DesignateSource(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateConfiguring:
		return fmt.Errorf("%w: source %q already designated", ErrAlreadyConfigured, s.sourceID)
	case StateConfigured:
		return fmt.Errorf("%w: cannot designate source %q", ErrAlreadyConfigured, id)
	}

	s.sourceID = id
	s.state = StateConfiguring
	return nil
}

// ConfigureOption adjusts a single Configure call.
type ConfigureOption func(*configureOptions)

type configureOptions struct {
	defaults *Catalog
}

// ConfigureWithDefaults replaces the defaults catalog for this Configure
// call. The replacement is wholesale: names defined only in the instance's
// catalog do not appear in the resolved namespace.
func ConfigureWithDefaults(c *Catalog) ConfigureOption {
	return func(o *configureOptions) {
		if c != nil {
			o.defaults = c
		}
	}
}

// Configure resolves the namespace immediately from the defaults catalog
// and the given overrides, without loading any designated source. The
// overrides map may be nil.
//
// Configure fails with ErrAlreadyConfigured once resolution has occurred.
// Calling it after DesignateSource but before the first read is permitted;
// the designated source is then never loaded.
func (s *Settings) Configure(overrides map[string]Value, opts ...ConfigureOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateConfigured {
		return ErrAlreadyConfigured
	}

	var co configureOptions
	for _, opt := range opts {
		opt(&co)
	}
	defaults := s.defaults
	if co.defaults != nil {
		defaults = co.defaults
	}

	s.ns = s.materialize(defaults, overrides)
	s.state = StateConfigured

	s.logger.Debug("settings configured",
		zap.Int("defaults", defaults.Len()),
		zap.Int("overrides", len(overrides)),
		zap.Int("settings", len(s.ns.values)))
	return nil
}

// Get returns the value for name, resolving the namespace first if a
// designated source is pending.
//
// Reads before designation or configuration fail with ErrNotConfigured. A
// load failure surfaces as a SourceError and leaves the instance
// unresolved, so a later read attempts the load again. Names absent from
// the resolved namespace fail with UnknownSettingError.
func (s *Settings) Get(name string) (Value, error) {
	s.mu.RLock()
	if s.state == StateConfigured {
		ns := s.ns
		s.mu.RUnlock()
		return ns.get(name)
	}
	s.mu.RUnlock()

	ns, err := s.resolve(name)
	if err != nil {
		return Value{}, err
	}
	return ns.get(name)
}

// resolve materializes the namespace from the designated source. The state
// is re-checked under the write lock so concurrent first reads trigger a
// single load.
func (s *Settings) resolve(name string) (*namespace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateConfigured:
		return s.ns, nil
	case StateUnconfigured:
		return nil, fmt.Errorf("%w: requested setting %s, but no source is designated and Configure was not called", ErrNotConfigured, name)
	}

	raw, err := s.loader.Load(s.sourceID)
	if err != nil {
		return nil, &SourceError{ID: s.sourceID, Err: err}
	}

	overrides := make(map[string]Value, len(raw))
	for n, rv := range raw {
		v, err := fromAny(rv)
		if err != nil {
			return nil, &SourceError{ID: s.sourceID, Err: fmt.Errorf("setting %s: %w", n, err)}
		}
		overrides[n] = v
	}

	s.ns = s.materialize(s.defaults, overrides)
	s.state = StateConfigured

	s.logger.Debug("settings resolved",
		zap.String("source", s.sourceID),
		zap.Int("defaults", s.defaults.Len()),
		zap.Int("overrides", len(overrides)),
		zap.Int("settings", len(s.ns.values)))
	return s.ns, nil
}

// materialize runs resolution and warns about overridden deprecated
// settings. Callers hold the write lock.
func (s *Settings) materialize(defaults *Catalog, overrides map[string]Value) *namespace {
	for name := range overrides {
		def, ok := defaults.Get(name)
		if !ok || !def.Deprecated {
			continue
		}
		fields := []zap.Field{zap.String("name", name)}
		if def.ReplacedBy != "" {
			fields = append(fields, zap.String("replaced_by", def.ReplacedBy))
		}
		s.logger.Warn("deprecated setting overridden", fields...)
	}

	return resolveNamespace(defaults, overrides)
}

// IsConfigured reports whether resolution has occurred. It never triggers
// resolution.
func (s *Settings) IsConfigured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateConfigured
}

// State returns the current lifecycle state. It never triggers resolution.
func (s *Settings) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// snapshot returns the resolved namespace without triggering resolution.
func (s *Settings) snapshot() (*namespace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateConfigured {
		return nil, ErrNotConfigured
	}
	return s.ns, nil
}

// Diff enumerates the settings whose resolved value differs structurally
// from the defaults catalog, sorted by name. Custom settings absent from
// the catalog are not included; their provenance is visible through Origin
// instead.
//
// Diff never triggers resolution: while the namespace is unresolved it
// fails with ErrNotConfigured.
func (s *Settings) Diff() ([]Delta, error) {
	ns, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return ns.diff(), nil
}

// Origin returns the provenance of a resolved setting. Like Diff, it never
// triggers resolution.
func (s *Settings) Origin(name string) (Origin, error) {
	ns, err := s.snapshot()
	if err != nil {
		return 0, err
	}
	return ns.origin(name)
}

// Names returns the resolved setting names sorted alphabetically, custom
// settings included. Like Diff, it never triggers resolution.
func (s *Settings) Names() ([]string, error) {
	ns, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return ns.names(), nil
}
