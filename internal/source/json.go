package source

import (
	"strings"

	"github.com/tidwall/gjson"
)

// LoadJSON reads a JSON settings document. The top-level value must be an
// object; its keys become setting names. Numbers without a fraction or
// exponent decode as integers.
func LoadJSON(path string) (map[string]any, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Path: path, Message: "invalid JSON"}
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, &ParseError{Path: path, Message: "top-level value must be an object"}
	}

	raw := make(map[string]any)
	doc.ForEach(func(key, value gjson.Result) bool {
		raw[key.String()] = jsonValue(value)
		return true
	})

	return filterNames(raw), nil
}

// jsonValue converts a gjson result into its Go representation.
func jsonValue(r gjson.Result) any {
	switch {
	case r.Type == gjson.Null:
		return nil
	case r.Type == gjson.True:
		return true
	case r.Type == gjson.False:
		return false
	case r.Type == gjson.String:
		return r.String()
	case r.Type == gjson.Number:
		if strings.ContainsAny(r.Raw, ".eE") {
			return r.Float()
		}
		return r.Int()
	case r.IsArray():
		items := r.Array()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = jsonValue(item)
		}
		return out
	case r.IsObject():
		out := make(map[string]any)
		r.ForEach(func(key, value gjson.Result) bool {
			out[key.String()] = jsonValue(value)
			return true
		})
		return out
	default:
		return r.Value()
	}
}
