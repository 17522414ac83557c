package schema

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateRule checks that a string parses with the given time layout. Chain
// [DateRule.Min] and [DateRule.Max] to document the accepted range.
type DateRule struct {
	validation.DateRule
	layout   string
	min, max time.Time
}

// Date returns a rule validating strings against layout.
func Date(layout string) *DateRule {
	return &DateRule{DateRule: validation.Date(layout), layout: layout}
}

// Min documents the earliest accepted date.
func (r *DateRule) Min(t time.Time) *DateRule {
	r.min = t
	return r
}

// Max documents the latest accepted date.
func (r *DateRule) Max(t time.Time) *DateRule {
	r.max = t
	return r
}

// Describe sets the layout as the schema format and notes the date range in
// the description.
func (r *DateRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = r.layout
	if !r.min.IsZero() {
		appendDesc(ref, "> "+r.min.String())
	}
	if !r.max.IsZero() {
		appendDesc(ref, "< "+r.max.String())
	}
	return nil
}
