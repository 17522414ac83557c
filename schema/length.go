package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthRule struct {
	validation.LengthRule
	min, max int
}

// Length checks that a string's rune count is between lo and hi inclusive.
func Length(lo, hi int) Rule {
	return &lengthRule{validation.RuneLength(lo, hi), lo, hi}
}

func (r *lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	fmin := float64(r.min)
	fmax := float64(r.max)
	ref.Value.Min = &fmin
	ref.Value.Max = &fmax
	return nil
}
