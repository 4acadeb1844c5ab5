package source

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// LoadTOML reads a TOML settings document. Top-level keys become setting
// names; tables decode as maps and arrays as lists.
func LoadTOML(path string) (map[string]any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			line, column := de.Position()
			return nil, &ParseError{Path: path, Line: line, Column: column, Message: de.Error(), Err: err}
		}
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	return filterNames(raw), nil
}
