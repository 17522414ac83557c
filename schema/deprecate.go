package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type deprecate struct{}

// Deprecate returns a documentation-only rule marking the field deprecated
// in the schema. It never fails validation.
func Deprecate() Rule {
	return deprecate{}
}

func (deprecate) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Deprecated = true
	return nil
}

func (deprecate) Validate(_ any) error {
	return nil
}
