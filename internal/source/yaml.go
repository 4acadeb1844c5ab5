package source

import "gopkg.in/yaml.v3"

// LoadYAML reads a YAML settings document. Top-level keys become setting
// names; mappings decode as maps, sequences as lists, and explicit nulls
// are preserved.
func LoadYAML(path string) (map[string]any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	return filterNames(raw), nil
}
