package schema

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// In checks that a value is one of the given values. The failure message
// lists the allowed values and the rejected one. Empty values pass; pair
// with [Required] to reject them.
func In(values ...any) Rule {
	return &inRule{
		validation.In(values...).Error(fmt.Sprintf("must be one of %s", quoteJoin(values))),
		values,
	}
}

type inRule struct {
	validation.InRule
	values []any
}

func (r *inRule) Validate(value any) error {
	if err := r.InRule.Validate(value); err != nil {
		return fmt.Errorf("%s got '%v'", err, value)
	}
	return nil
}

func (r *inRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = r.values
	return nil
}

// NotIn checks that a value is absent from the given values.
func NotIn(values ...any) Rule {
	quoted := quoteJoin(values)
	return &notInRule{
		validation.NotIn(values...).Error("must not be one of " + quoted),
		quoted,
	}
}

type notInRule struct {
	validation.NotInRule
	desc string
}

func (r *notInRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDesc(ref, "not one of "+r.desc)
	return nil
}

func quoteJoin(values []any) string {
	quoted := make([]string, len(values))
	for i := range values {
		quoted[i] = fmt.Sprintf("'%v'", values[i])
	}
	return strings.Join(quoted, ", ")
}
