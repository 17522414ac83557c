package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type defaulter struct {
	a any
}

// Default returns a rule that documents a as the schema default and, when
// parsing through [For], fills the field with a if the decoded value is the
// type's zero value. Outside a Parser it is documentation-only.
func Default(a any) Rule {
	return defaulter{a: a}
}

func (r defaulter) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Default = r.a
	return nil
}

func (r defaulter) Validate(_ any) error {
	return nil
}
