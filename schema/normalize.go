package schema

import (
	"context"
	"reflect"
)

// Normalizer is implemented by types that need custom normalization after
// decoding. Called before validation. When the top-level type implements
// Normalizer, normalization recurses into struct fields, slices, maps, and
// embedded structs, calling Normalize on any nested type that also implements
// it. Top level is always called first, then children depth-first.
type Normalizer interface {
	Normalize()
}

// ContextNormalizer is like Normalizer but receives a context.
type ContextNormalizer interface {
	Normalize(context.Context)
}

// normalizeRecursive calls Normalize on a (top level first), then walks struct
// fields depth-first calling Normalize on every nested value implementing
// Normalizer or ContextNormalizer.
func normalizeRecursive(ctx context.Context, a any) {
	if a == nil {
		return
	}
	callNormalize(ctx, a)
	rv := reflect.Indirect(reflect.ValueOf(a))
	if rv.Kind() == reflect.Struct {
		walkNormalize(ctx, rv)
	}
}

func callNormalize(ctx context.Context, v any) {
	if n, ok := v.(ContextNormalizer); ok {
		n.Normalize(ctx)
		return
	}
	if n, ok := v.(Normalizer); ok {
		n.Normalize()
	}
}

// walkNormalize visits the exported fields of an addressable struct value.
// Unexported fields are skipped so the walk never reaches into opaque types
// like time.Time.
func walkNormalize(ctx context.Context, rv reflect.Value) {
	for i := range rv.NumField() {
		if !rv.Type().Field(i).IsExported() {
			continue
		}
		field := rv.Field(i)
		switch field.Kind() {
		case reflect.Struct, reflect.Ptr:
			normalizeValue(ctx, field)
		case reflect.Slice:
			for j := range field.Len() {
				normalizeValue(ctx, field.Index(j))
			}
		case reflect.Map:
			for _, key := range field.MapKeys() {
				val := field.MapIndex(key)
				if val.Kind() != reflect.Struct {
					continue
				}
				// Map values aren't addressable; copy, normalize, put back.
				cp := reflect.New(val.Type())
				cp.Elem().Set(val)
				callNormalize(ctx, cp.Interface())
				walkNormalize(ctx, cp.Elem())
				field.SetMapIndex(key, cp.Elem())
			}
		}
	}
}

// normalizeValue normalizes a single struct or pointer value and then walks
// the struct underneath it. Other kinds are left alone.
func normalizeValue(ctx context.Context, v reflect.Value) {
	switch v.Kind() {
	case reflect.Struct:
		if v.CanAddr() {
			callNormalize(ctx, v.Addr().Interface())
		}
		walkNormalize(ctx, v)
	case reflect.Ptr:
		if v.IsNil() {
			return
		}
		callNormalize(ctx, v.Interface())
		if v.Elem().Kind() == reflect.Struct {
			walkNormalize(ctx, v.Elem())
		}
	}
}
