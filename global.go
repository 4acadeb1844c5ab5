package settle

// std is the process-wide Settings instance behind the package-level
// functions. Callers that need a custom loader, defaults catalog, or
// logger construct their own instance with New.
var std = New()

// Default returns the process-wide Settings instance.
func Default() *Settings { return std }

// DesignateSource designates the source of the process-wide instance.
func DesignateSource(id string) error { return std.DesignateSource(id) }

// Configure configures the process-wide instance.
func Configure(overrides map[string]Value, opts ...ConfigureOption) error {
	return std.Configure(overrides, opts...)
}

// Get returns a setting from the process-wide instance.
func Get(name string) (Value, error) { return std.Get(name) }

// GetBool returns a boolean setting from the process-wide instance.
func GetBool(name string) (bool, error) { return std.GetBool(name) }

// GetInt returns an integer setting from the process-wide instance.
func GetInt(name string) (int64, error) { return std.GetInt(name) }

// GetFloat returns a numeric setting from the process-wide instance.
func GetFloat(name string) (float64, error) { return std.GetFloat(name) }

// GetString returns a string setting from the process-wide instance.
func GetString(name string) (string, error) { return std.GetString(name) }

// GetStringSlice returns a string list setting from the process-wide
// instance.
func GetStringSlice(name string) ([]string, error) { return std.GetStringSlice(name) }

// GetMap returns a map setting from the process-wide instance.
func GetMap(name string) (map[string]Value, error) { return std.GetMap(name) }

// IsConfigured reports whether the process-wide instance is configured.
func IsConfigured() bool { return std.IsConfigured() }

// Diff enumerates the process-wide instance's settings that differ from
// their defaults.
func Diff() ([]Delta, error) { return std.Diff() }
