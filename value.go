package settle

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the data type carried by a Value.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Value.
	KindInvalid Kind = iota
	// KindNil represents an explicit null value.
	KindNil
	// KindBool represents a boolean value.
	KindBool
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a floating-point value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindList represents an ordered sequence of values.
	KindList
	// KindMap represents a string-keyed mapping of values.
	KindMap
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Value is an immutable setting value: a tagged union over the payload
// types a settings source can declare. The zero Value is invalid; values
// are built with the constructors below or decoded from a source by a
// Loader.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	list []Value
	m    map[string]Value
}

// Nil returns the explicit null value. It is distinct from a missing
// setting: a name resolved to Nil exists in the namespace.
func Nil() Value { return Value{kind: KindNil} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns a list value holding the given items. The items are copied.
func List(items ...Value) Value {
	list := make([]Value, len(items))
	copy(list, items)
	return Value{kind: KindList, list: list}
}

// Strings returns a list value holding the given strings.
func Strings(items ...string) Value {
	list := make([]Value, len(items))
	for i, s := range items {
		list[i] = String(s)
	}
	return Value{kind: KindList, list: list}
}

// Map returns a map value holding the given entries. The entries are copied.
func Map(entries map[string]Value) Value {
	m := make(map[string]Value, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return Value{kind: KindMap, m: m}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether the value is the explicit null value.
func (v Value) IsNil() bool { return v.kind == KindNil }

// AsBool returns the boolean payload. The second result is false if the
// value is not a boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the integer payload. The second result is false if the
// value is not an integer.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the numeric payload as a float64. Integer values are
// widened. The second result is false if the value is not numeric.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsString returns the string payload. The second result is false if the
// value is not a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsList returns a copy of the list payload. The second result is false if
// the value is not a list.
func (v Value) AsList() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	list := make([]Value, len(v.list))
	copy(list, v.list)
	return list, true
}

// AsMap returns a copy of the map payload. The second result is false if
// the value is not a map.
func (v Value) AsMap() (map[string]Value, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	m := make(map[string]Value, len(v.m))
	for k, item := range v.m {
		m[k] = item
	}
	return m, true
}

// AsStringSlice returns the list payload as strings. The second result is
// false if the value is not a list or any item is not a string.
func (v Value) AsStringSlice() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}
	out := make([]string, len(v.list))
	for i, item := range v.list {
		s, ok := item.AsString()
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// Len returns the number of items in a list or map value, and 0 for every
// other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.m)
	default:
		return 0
	}
}

// Index returns the list item at position i. The second result is false if
// the value is not a list or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindList || i < 0 || i >= len(v.list) {
		return Value{}, false
	}
	return v.list[i], true
}

// Entry returns the map entry for key. The second result is false if the
// value is not a map or the key is absent.
func (v Value) Entry(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	item, ok := v.m[key]
	return item, ok
}

// Equal reports whether two values are structurally equal: same kind and
// same payload, compared recursively for lists and maps.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(o.m) {
			return false
		}
		for k, item := range v.m {
			other, ok := o.m[k]
			if !ok || !item.Equal(other) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String returns a human-readable rendering of the value. Strings are
// quoted; map entries are sorted by key.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		keys := make([]string, 0, len(v.m))
		for k := range v.m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.m[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "<invalid>"
	}
}

// fromAny converts a value decoded from a settings source into a Value.
// Slices and maps are converted recursively.
func fromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return Nil(), nil
	case Value:
		return v, nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(int64(v)), nil
	case int8:
		return Int(int64(v)), nil
	case int16:
		return Int(int64(v)), nil
	case int32:
		return Int(int64(v)), nil
	case int64:
		return Int(v), nil
	case uint:
		return Int(int64(v)), nil
	case uint8:
		return Int(int64(v)), nil
	case uint16:
		return Int(int64(v)), nil
	case uint32:
		return Int(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return Value{}, fmt.Errorf("integer %d overflows int64", v)
		}
		return Int(int64(v)), nil
	case float32:
		return Float(float64(v)), nil
	case float64:
		return Float(v), nil
	case string:
		return String(v), nil
	case []string:
		return Strings(v...), nil
	case []any:
		list := make([]Value, len(v))
		for i, item := range v {
			cv, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			list[i] = cv
		}
		return Value{kind: KindList, list: list}, nil
	case map[string]any:
		m := make(map[string]Value, len(v))
		for k, item := range v {
			cv, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			m[k] = cv
		}
		return Value{kind: KindMap, m: m}, nil
	case map[any]any:
		m := make(map[string]Value, len(v))
		for k, item := range v {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("map key %v is not a string", k)
			}
			cv, err := fromAny(item)
			if err != nil {
				return Value{}, err
			}
			m[ks] = cv
		}
		return Value{kind: KindMap, m: m}, nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", raw)
	}
}
