// Package settle provides deferred one-shot settings resolution for server
// applications.
//
// A Settings instance merges caller-supplied overrides (a settings module on
// disk, or values passed to Configure) over a catalog of framework defaults.
// Resolution happens at most once per instance: either lazily on the first
// read after a source has been designated, or immediately when Configure is
// called. After resolution the namespace is immutable and reads are served
// from it without further I/O.
//
// # Lifecycle
//
// Every instance moves forward through three states and never back:
//
//	┌──────────────┐  DesignateSource  ┌──────────────┐  first read  ┌──────────────┐
//	│ unconfigured │ ────────────────▶ │ configuring  │ ───────────▶ │  configured  │
//	└──────────────┘                   └──────────────┘              └──────────────┘
//	        │                                  │                            ▲
//	        └────────────── Configure ─────────┴────────────────────────────┘
//
// Designating a source records an identifier without touching it; the source
// is loaded on the first read. Configure resolves immediately and is also
// permitted after designation, in which case the designated source is never
// loaded. Reconfiguring or re-designating a resolved instance fails with
// ErrAlreadyConfigured.
//
// # Settings Modules
//
// Setting names follow the uppercase convention: at least one letter, no
// lowercase letters. Loaders skip other names, so a module can keep local
// helpers without leaking them into the namespace. The built-in FileLoader
// dispatches on the file extension and understands TOML, YAML, JSON, and Lua
// modules:
//
//	# app.toml
//	DEBUG = true
//	ALLOWED_HOSTS = ["api.example.com"]
//
//	-- app.lua
//	local port = 8000
//	DEBUG = true
//	BIND_PORT = port
//
// # Basic Usage
//
// Designate a settings module and read lazily:
//
//	settings := settle.New()
//	if err := settings.DesignateSource("/etc/app/settings.toml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	debug, err := settings.GetBool("DEBUG")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or resolve immediately from in-process values:
//
//	err := settings.Configure(map[string]settle.Value{
//	    "DEBUG":     settle.Bool(true),
//	    "BIND_PORT": settle.Int(9000),
//	})
//
// A process-wide instance is available through the package-level functions
// (DesignateSource, Configure, Get, and friends).
//
// # Error Handling
//
// The package defines sentinel errors that typed errors match through
// errors.Is:
//
//   - ErrNotConfigured: read before designation or configuration
//   - ErrAlreadyConfigured: second designation or configuration
//   - ErrUnknownSetting: name absent from the resolved namespace
//   - ErrSourceLoad: designated source failed to load or decode
//   - ErrTypeMismatch: typed accessor used on a value of another kind
package settle
