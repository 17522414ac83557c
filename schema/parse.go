package schema

import (
	"context"
	"errors"
	"reflect"

	"github.com/go-viper/mapstructure/v2"

	"github.com/Gobd/reqgate"
)

// Parser is a section schema producing values of type T. It decodes the raw
// section into a fresh T, fills declared defaults, normalizes, validates T's
// rules, and reports failures as ordered violations.
//
// Parser implements both [reqgate.Schema] and [reqgate.ContextSchema], so a
// gate passes the request context through to any [ContextRuler] rules.
type Parser[T any] struct{}

// For returns a section schema for T. *T should implement [Ruler],
// [ContextRuler], or [ValueRuler]; a T without rules accepts any input and
// still gives handlers a typed value.
func For[T any]() *Parser[T] {
	return &Parser[T]{}
}

// SafeParse implements reqgate.Schema.
func (p *Parser[T]) SafeParse(raw any) (any, reqgate.Violations) {
	return p.SafeParseContext(context.Background(), raw)
}

// SafeParseContext implements reqgate.ContextSchema.
//
// A nil raw value (an absent body) parses as the zero T, so required rules
// still fire. The returned value is a T, never a *T.
func (p *Parser[T]) SafeParseContext(ctx context.Context, raw any) (any, reqgate.Violations) {
	dst := new(T)
	if raw != nil {
		if err := Decode(raw, dst); err != nil {
			return nil, decodeViolations(err)
		}
	}
	applyDefaults(ctx, dst)
	normalizeRecursive(ctx, dst)
	if err := validateCore(ctx, dst); err != nil {
		return nil, toViolations(err)
	}
	return *dst, nil
}

// decodeViolations converts a mapstructure decode failure into violations,
// one per offending field. The messages already name the field, so paths are
// left at the root.
func decodeViolations(err error) reqgate.Violations {
	var merr *mapstructure.Error
	if errors.As(err, &merr) {
		out := make(reqgate.Violations, 0, len(merr.Errors))
		for _, msg := range merr.Errors {
			out = append(out, reqgate.Violation{Path: []string{}, Message: msg})
		}
		return out
	}
	return reqgate.Fail(err.Error())
}

// applyDefaults fills zero-valued fields that declare a Default rule.
// Embedded Ruler fields are expanded first, so their defaults apply too.
func applyDefaults(ctx context.Context, structPtr any) {
	var fields []*FieldRules
	switch r := structPtr.(type) {
	case Ruler:
		fields = r.Rules()
	case ContextRuler:
		fields = r.Rules(ctx)
	default:
		return
	}

	for _, fr := range expandFields(ctx, structPtr, fields) {
		for _, rule := range fr.rules {
			d, ok := rule.(defaulter)
			if !ok {
				continue
			}
			setDefault(fr.fieldPtr, d.a)
		}
	}
}

func setDefault(fieldPtr, value any) {
	fv := reflect.ValueOf(fieldPtr)
	if fv.Kind() != reflect.Ptr || fv.IsNil() {
		return
	}
	fv = fv.Elem()
	if !fv.CanSet() || !fv.IsZero() {
		return
	}
	dv := reflect.ValueOf(value)
	switch {
	case dv.Type().AssignableTo(fv.Type()):
		fv.Set(dv)
	case dv.Type().ConvertibleTo(fv.Type()):
		fv.Set(dv.Convert(fv.Type()))
	}
}
