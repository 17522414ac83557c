package reqgate

import (
	"reflect"
	"strings"
)

// overlay copies base and applies over on top of it: keys present in over
// win, keys only in base survive. Neither input is modified.
func overlay(base, over map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}

// asMap converts an engine's coerced output into a key/value map for
// merging. Maps pass through; structs (or pointers to structs) are walked by
// json tag name so field values keep their Go types. Anything else reports
// false and the section map is left alone; the typed value stays reachable
// through the Result.
func asMap(data any) (map[string]any, bool) {
	if m, ok := data.(map[string]any); ok {
		return m, true
	}

	rv := reflect.ValueOf(data)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}

	m := make(map[string]any, rv.NumField())
	structToMap(rv, m)
	return m, true
}

func structToMap(rv reflect.Value, m map[string]any) {
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if sf.Anonymous {
			fv := rv.Field(i)
			if sf.Type.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				structToMap(fv, m)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		name := jsonName(sf)
		if name == "" {
			continue
		}
		m[name] = rv.Field(i).Interface()
	}
}

// jsonName resolves the key a field marshals under; "" means excluded.
func jsonName(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	switch tag {
	case "-":
		return ""
	case "":
		return sf.Name
	}
	return tag
}
