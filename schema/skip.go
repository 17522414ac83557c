package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type skipRule struct {
	skip bool
	desc string
}

// Skip returns a rule that passes everything and adds desc to the schema
// description. Use it to mark fields that are checked elsewhere.
func Skip(desc string) Rule {
	return &skipRule{skip: true, desc: desc}
}

func (r *skipRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDesc(ref, r.desc)
	return nil
}

func (r *skipRule) Validate(any) error {
	return nil
}

// When determines if the rule applies.
func (r *skipRule) When(condition bool) Rule {
	r.skip = condition
	return r
}
