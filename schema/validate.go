package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks value against the rules it declares. Struct types
// implementing [Ruler] (or [ContextRuler]) are validated field by field;
// non-struct types implementing [ValueRuler] have their rules applied to the
// value itself. Slices, arrays, and maps whose element type is a Ruler struct
// are validated element-wise with the index or key as the error key.
func Validate(value any) error {
	return validateCore(context.Background(), value)
}

// ValidateCtx is like Validate but makes ctx available to
// [ContextRuler].Rules.
func ValidateCtx(ctx context.Context, value any) error {
	return validateCore(ctx, value)
}

// ValidateStruct validates structPtr against an explicit rule list. Most
// callers should declare a Rules method and use [Validate] instead.
func ValidateStruct(structPtr any, fields []*FieldRules) error {
	return validation.ValidateStruct(structPtr, convertFieldRules(context.Background(), structPtr, fields...)...)
}

// UnmarshalAndValidate unmarshals JSON into dst, normalizes it (see
// [Normalizer]), and validates it.
func UnmarshalAndValidate(b []byte, dst any) error {
	return UnmarshalAndValidateCtx(context.Background(), b, dst)
}

// UnmarshalAndValidateCtx is like UnmarshalAndValidate but makes ctx
// available to [ContextNormalizer].Normalize and [ContextRuler].Rules.
func UnmarshalAndValidateCtx(ctx context.Context, b []byte, dst any) error {
	if err := json.Unmarshal(b, dst); err != nil {
		return err
	}
	normalizeRecursive(ctx, dst)
	return ValidateCtx(ctx, dst)
}

// DecodeAndValidate decodes JSON from r into dst with a streaming decoder,
// then normalizes and validates. Prefer this over [UnmarshalAndValidate] when
// the input is already an [io.Reader], e.g. an HTTP request body.
func DecodeAndValidate(r io.Reader, dst any) error {
	return DecodeAndValidateContext(context.Background(), r, dst)
}

// DecodeAndValidateContext is like DecodeAndValidate but makes ctx available
// to [ContextNormalizer].Normalize and [ContextRuler].Rules.
func DecodeAndValidateContext(ctx context.Context, r io.Reader, dst any) error {
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	normalizeRecursive(ctx, dst)
	return ValidateCtx(ctx, dst)
}

func validateCore(ctx context.Context, value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil
	}

	// Struct with a Rules method, either on value itself or on the pointer
	// type of a plain struct value (ozzo hands the bridge rule field values,
	// not pointers).
	if target := rulerTarget(value, rv); target != nil {
		switch r := target.(type) {
		case Ruler:
			return validation.ValidateStruct(target, convertFieldRules(ctx, target, r.Rules()...)...)
		case ContextRuler:
			return validation.ValidateStruct(target, convertFieldRules(ctx, target, r.Rules(ctx)...)...)
		}
	}

	// Non-struct type carrying its own rules.
	if vr, ok := value.(ValueRuler); ok {
		return applyRules(value, vr.ValueRules())
	}

	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil
	}

	rv = reflect.Indirect(rv)

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		if elementsValidatable(rv.Type().Elem()) {
			return validateItems(ctx, rv)
		}
	case reflect.Ptr, reflect.Interface:
		return validateCore(ctx, rv.Elem().Interface())
	}

	return nil
}

// rulerTarget returns the value to validate as a Ruler/ContextRuler struct:
// value itself when it implements one of the interfaces, a fresh pointer to a
// copy when only the pointer type does, nil when neither applies. Ruler wins
// over ContextRuler when a type implements both.
func rulerTarget(value any, rv reflect.Value) any {
	switch value.(type) {
	case Ruler, ContextRuler:
		return value
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	switch pi := ptr.Interface(); pi.(type) {
	case Ruler, ContextRuler:
		return pi
	}
	return nil
}

// applyRules runs each rule against value, stopping at the first failure.
func applyRules(value any, rules []Rule) error {
	for _, rule := range rules {
		if err := rule.Validate(value); err != nil {
			return err
		}
	}
	return nil
}

// elementsValidatable reports whether a collection of elemType should be
// validated element-wise. True for Ruler structs and, recursively, for
// collections of them (map[string][]Item and the like).
func elementsValidatable(elemType reflect.Type) bool {
	switch elemType.Kind() {
	case reflect.Struct:
		switch reflect.New(elemType).Interface().(type) {
		case Ruler, ContextRuler:
			return true
		}
	case reflect.Slice, reflect.Array, reflect.Map:
		return elementsValidatable(elemType.Elem())
	}
	return false
}

// validateItems walks a map, slice, or array and validates each element,
// keying errors by map key or element index.
func validateItems(ctx context.Context, rv reflect.Value) error {
	errs := validation.Errors{}
	if rv.Kind() == reflect.Map {
		for _, key := range rv.MapKeys() {
			if err := checkElement(ctx, rv.MapIndex(key)); err != nil {
				errs[fmt.Sprintf("%v", key.Interface())] = err
			}
		}
	} else {
		for i := range rv.Len() {
			if err := checkElement(ctx, rv.Index(i)); err != nil {
				errs[strconv.Itoa(i)] = err
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkElement(ctx context.Context, v reflect.Value) error {
	if (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && v.IsNil() {
		return nil
	}

	if pi, ok := addressableRuler(v); ok {
		return validateCore(ctx, pi)
	}

	// Nested collections recurse through validateCore.
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return validateCore(ctx, v.Interface())
	}

	return nil
}

// addressableRuler obtains a pointer to v, copying when v is not addressable,
// and reports whether the pointer implements Ruler or ContextRuler. Rules
// methods commonly have pointer receivers, which a bare struct value would
// miss.
func addressableRuler(v reflect.Value) (any, bool) {
	var ptr reflect.Value
	switch {
	case v.CanAddr():
		ptr = v.Addr()
	case v.Type().Kind() == reflect.Struct:
		ptr = reflect.New(v.Type())
		ptr.Elem().Set(v)
	default:
		return nil, false
	}
	switch pi := ptr.Interface(); pi.(type) {
	case Ruler, ContextRuler:
		return pi, true
	}
	return nil, false
}

// recurseRule is appended to every converted field so ozzo re-enters
// validateCore for Ruler children, collections of them included.
type recurseRule struct {
	ctx context.Context
}

func (b *recurseRule) Validate(value any) error {
	if value == nil {
		return nil
	}
	return validateCore(b.ctx, value)
}

// convertFieldRules lowers FieldRules into ozzo's field rules, expanding
// embedded Ruler fields into flat keys first and appending a recurseRule per
// field.
func convertFieldRules(ctx context.Context, structPtr any, fields ...*FieldRules) []*validation.FieldRules {
	flat := expandFields(ctx, structPtr, fields)

	vFields := make([]*validation.FieldRules, len(flat))
	for i, fr := range flat {
		rules := make([]validation.Rule, len(fr.rules), len(fr.rules)+1)
		for j, r := range fr.rules {
			rules[j] = validation.Rule(r)
		}
		rules = append(rules, &recurseRule{ctx: ctx})
		vFields[i] = validation.Field(fr.fieldPtr, rules...)
	}
	return vFields
}

func convertRules(rules ...Rule) []validation.Rule {
	vRules := make([]validation.Rule, len(rules))
	for i := range rules {
		vRules[i] = validation.Rule(rules[i])
	}
	return vRules
}

// By wraps f into a [Rule] that documents itself with desc.
func By(f RuleFunc, desc string) Rule {
	return &funcRule{validation.By(validation.RuleFunc(f)), f, desc}
}

type funcRule struct {
	validation.Rule
	f    RuleFunc
	desc string
}

func (r *funcRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDesc(ref, r.desc)
	return nil
}
