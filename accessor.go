package settle

// Typed accessors. Each reads through Get, so the first access on an
// instance with a designated source triggers resolution. A value of the
// wrong kind fails with a TypeError.

// GetBool returns a boolean setting.
func (s *Settings) GetBool(name string) (bool, error) {
	v, err := s.Get(name)
	if err != nil {
		return false, err
	}
	b, ok := v.AsBool()
	if !ok {
		return false, &TypeError{Name: name, Expected: "boolean", Actual: v.Kind().String()}
	}
	return b, nil
}

// GetInt returns an integer setting.
func (s *Settings) GetInt(name string) (int64, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}
	i, ok := v.AsInt()
	if !ok {
		return 0, &TypeError{Name: name, Expected: "integer", Actual: v.Kind().String()}
	}
	return i, nil
}

// GetFloat returns a numeric setting as a float64. Integer values are
// widened.
func (s *Settings) GetFloat(name string) (float64, error) {
	v, err := s.Get(name)
	if err != nil {
		return 0, err
	}
	f, ok := v.AsFloat()
	if !ok {
		return 0, &TypeError{Name: name, Expected: "number", Actual: v.Kind().String()}
	}
	return f, nil
}

// GetString returns a string setting.
func (s *Settings) GetString(name string) (string, error) {
	v, err := s.Get(name)
	if err != nil {
		return "", err
	}
	str, ok := v.AsString()
	if !ok {
		return "", &TypeError{Name: name, Expected: "string", Actual: v.Kind().String()}
	}
	return str, nil
}

// GetStringSlice returns a list setting whose items are all strings.
func (s *Settings) GetStringSlice(name string) ([]string, error) {
	v, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	items, ok := v.AsList()
	if !ok {
		return nil, &TypeError{Name: name, Expected: "string list", Actual: v.Kind().String()}
	}
	out := make([]string, len(items))
	for i, item := range items {
		str, sok := item.AsString()
		if !sok {
			return nil, &TypeError{Name: name, Expected: "string list", Actual: "list with " + item.Kind().String() + " item"}
		}
		out[i] = str
	}
	return out, nil
}

// GetMap returns a map setting.
func (s *Settings) GetMap(name string) (map[string]Value, error) {
	v, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	m, ok := v.AsMap()
	if !ok {
		return nil, &TypeError{Name: name, Expected: "map", Actual: v.Kind().String()}
	}
	return m, nil
}
