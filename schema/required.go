package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Required checks that a value is neither nil nor empty. The zero value of
// any type counts as empty, so required int fields reject 0.
var Required = requiredRule{validation.Required, "required"}

type requiredRule struct {
	validation.RequiredRule
	desc string
}

// Describe adds the field to the parent schema's required list rather than
// touching the field schema itself.
func (r requiredRule) Describe(name string, schema *openapi3.Schema, _ *openapi3.SchemaRef) error {
	schema.Required = append(schema.Required, name)
	return nil
}
