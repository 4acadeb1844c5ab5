// Package source implements the settings module loaders behind the public
// FileLoader: TOML, YAML, and JSON documents, and Lua modules evaluated in
// a restricted interpreter.
//
// Every loader returns a flat mapping of setting names to decoded values
// and applies the uppercase naming convention: names with no letters or
// with any lowercase letter are skipped, so modules can keep local helpers
// without leaking them into the namespace.
package source

import (
	"fmt"
	"os"
	"unicode"
)

// IsSettingName reports whether name follows the settings naming
// convention: at least one letter and no lowercase letters.
func IsSettingName(name string) bool {
	hasLetter := false
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// filterNames drops entries whose keys do not follow the naming convention.
func filterNames(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for name, v := range raw {
		if IsSettingName(name) {
			out[name] = v
		}
	}
	return out
}

// readFile reads a settings file.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return data, nil
}

// ParseError represents an error while decoding a settings file.
type ParseError struct {
	// Path is the file path that failed to decode.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the decode error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
