package source

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"
)

// LoadLua evaluates a Lua settings module and collects the uppercase
// globals it defines.
//
// The module runs in a dedicated interpreter with only the base, table,
// string, and math libraries opened; io, os, debug, and package stay
// closed, and the chunk-loading primitives (dofile, loadfile, load,
// loadstring) are removed so a module cannot pull in code outside the
// designated file. Interpreter builtins such as _G and _VERSION are
// excluded by a baseline snapshot taken before evaluation.
//
// Integral numbers decode as integers. Tables with a non-empty array part
// decode as lists, other tables as string-keyed maps; empty tables decode
// as empty maps. Functions and other non-data values are skipped.
func LoadLua(path string) (map[string]any, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibraries(L)
	baseline := globalNames(L)

	if err := doFileWithRecovery(L, path); err != nil {
		return nil, fmt.Errorf("evaluating settings module %s: %w", path, err)
	}

	raw := make(map[string]any)
	var convErr error
	globals := L.Get(lua.GlobalsIndex).(*lua.LTable)
	globals.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}
		name, ok := k.(lua.LString)
		if !ok || baseline[string(name)] || !IsSettingName(string(name)) {
			return
		}
		gv, ok, err := fromLValue(v)
		if err != nil {
			convErr = fmt.Errorf("settings module %s: setting %s: %w", path, name, err)
			return
		}
		if ok {
			raw[string(name)] = gv
		}
	})
	if convErr != nil {
		return nil, convErr
	}

	return raw, nil
}

// openSafeLibraries opens only safe Lua standard libraries and removes the
// chunk-loading primitives the base library brings in.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// globalNames snapshots the names currently defined in the globals table.
func globalNames(L *lua.LState) map[string]bool {
	names := make(map[string]bool)
	globals := L.Get(lua.GlobalsIndex).(*lua.LTable)
	globals.ForEach(func(k, _ lua.LValue) {
		if name, ok := k.(lua.LString); ok {
			names[string(name)] = true
		}
	})
	return names
}

// doFileWithRecovery executes a Lua file with panic recovery.
func doFileWithRecovery(L *lua.LState, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return L.DoFile(path)
}

// fromLValue converts a Lua value to its Go representation. The second
// result is false for values with no data representation (functions,
// userdata, channels, threads), which callers skip.
func fromLValue(v lua.LValue) (any, bool, error) {
	switch lv := v.(type) {
	case lua.LBool:
		return bool(lv), true, nil
	case lua.LNumber:
		f := float64(lv)
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f), true, nil
		}
		return f, true, nil
	case lua.LString:
		return string(lv), true, nil
	case *lua.LTable:
		return tableValue(lv)
	default:
		return nil, false, nil
	}
}

// tableValue converts a Lua table. Tables with a non-empty array part
// become []any; other tables become map[string]any and require string
// keys.
func tableValue(t *lua.LTable) (any, bool, error) {
	if maxn := t.MaxN(); maxn > 0 {
		out := make([]any, 0, maxn)
		for i := 1; i <= maxn; i++ {
			item, ok, err := fromLValue(t.RawGetInt(i))
			if err != nil {
				return nil, false, err
			}
			if !ok {
				return nil, false, fmt.Errorf("unsupported value at index %d", i)
			}
			out = append(out, item)
		}
		return out, true, nil
	}

	out := make(map[string]any)
	var convErr error
	t.ForEach(func(k, v lua.LValue) {
		if convErr != nil {
			return
		}
		key, ok := k.(lua.LString)
		if !ok {
			convErr = fmt.Errorf("table key %s is not a string", k.String())
			return
		}
		item, ok, err := fromLValue(v)
		if err != nil {
			convErr = err
			return
		}
		if ok {
			out[string(key)] = item
		}
	})
	if convErr != nil {
		return nil, false, convErr
	}
	return out, true, nil
}
