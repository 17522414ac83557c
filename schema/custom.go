package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type custom struct {
	f    func(any) error
	desc string
}

// Custom returns a rule validating with f and documenting itself with desc.
func Custom(f func(any) error, desc string) Rule {
	return custom{f: f, desc: desc}
}

func (r custom) Validate(value any) error {
	return r.f(value)
}

func (r custom) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDesc(ref, r.desc)
	return nil
}
