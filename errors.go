package settle

import (
	"errors"
	"fmt"
)

// Errors returned by settings operations.
var (
	// ErrNotConfigured indicates a read before a source was designated or
	// Configure was called.
	ErrNotConfigured = errors.New("settings are not configured")

	// ErrAlreadyConfigured indicates an attempt to designate or configure
	// settings whose configuration is already fixed.
	ErrAlreadyConfigured = errors.New("settings already configured")

	// ErrUnknownSetting indicates the requested name does not exist in the
	// resolved namespace.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrSourceLoad indicates the designated settings source could not be
	// loaded or decoded.
	ErrSourceLoad = errors.New("settings source load failed")

	// ErrTypeMismatch indicates the value type doesn't match the expected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidSettingName indicates a name that does not follow the
	// uppercase naming convention.
	ErrInvalidSettingName = errors.New("invalid setting name")

	// ErrDuplicateSetting indicates an attempt to define the same name twice
	// in a catalog.
	ErrDuplicateSetting = errors.New("setting already defined")
)

// UnknownSettingError reports a read of a name absent from the resolved
// namespace.
type UnknownSettingError struct {
	// Name is the requested setting name.
	Name string
}

// Error implements the error interface.
func (e *UnknownSettingError) Error() string {
	return fmt.Sprintf("unknown setting %s", e.Name)
}

// Is implements error matching for UnknownSettingError.
func (e *UnknownSettingError) Is(target error) bool {
	return target == ErrUnknownSetting
}

// SourceError reports a failure to load or decode a settings source. It is
// surfaced on the read that triggered resolution.
type SourceError struct {
	// ID is the designated source identifier.
	ID string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("loading settings source %s: %v", e.ID, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is implements error matching for SourceError.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceLoad
}

// TypeError is returned when a typed accessor is used on a value of a
// different kind.
type TypeError struct {
	// Name is the setting name.
	Name string
	// Expected is the expected type name.
	Expected string
	// Actual is the actual type name.
	Actual string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %s", e.Name, e.Expected, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
