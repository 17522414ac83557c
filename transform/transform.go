package transform

import (
	"reflect"
	"strings"
)

// StructTrimSpace runs [strings.TrimSpace] on all string fields in the struct recursively,
// including nested structs, pointer fields, slices, and map values.
func StructTrimSpace(v any) {
	mutate(v, strings.TrimSpace)
}

// StructToLower runs [strings.ToLower] on all string fields in the struct recursively.
func StructToLower(v any) {
	mutate(v, strings.ToLower)
}

// StructToUpper runs [strings.ToUpper] on all string fields in the struct recursively.
func StructToUpper(v any) {
	mutate(v, strings.ToUpper)
}

// StructStringFunc applies f to every string field in the struct recursively.
func StructStringFunc(v any, f func(string) string) {
	mutate(v, f)
}

// StructMulti runs all given functions on the struct pointer sequentially.
func StructMulti(v any, fns ...func(any)) {
	for _, f := range fns {
		f(v)
	}
}

// mutate walks a struct (or pointer to one) and rewrites every reachable
// string through f. Non-struct values are left alone.
func mutate(a any, f func(string) string) {
	v := reflect.ValueOf(a)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	walkFields(v, f)
}

func walkFields(v reflect.Value, f func(string) string) {
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}
		apply(field, f)
	}
}

func apply(v reflect.Value, f func(string) string) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(f(v.String()))
		}
	case reflect.Struct:
		walkFields(v, f)
	case reflect.Pointer:
		if !v.IsNil() {
			apply(v.Elem(), f)
		}
	case reflect.Interface:
		// Skip interface fields — concrete type is unknown at compile time
		// and modifying them via reflect can cause subtle bugs.
	case reflect.Slice:
		for i := range v.Len() {
			apply(v.Index(i), f)
		}
	case reflect.Map:
		// Map values are not addressable; mutate a copy and store it back.
		for _, key := range v.MapKeys() {
			val := v.MapIndex(key)
			cp := reflect.New(val.Type()).Elem()
			cp.Set(val)
			apply(cp, f)
			v.SetMapIndex(key, cp)
		}
	}
}
