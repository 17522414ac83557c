package openapi

import (
	"github.com/Gobd/reqgate/schema"
	"github.com/getkin/kin-openapi/openapi3"
)

// NewSchemaRefForValue generates an OpenAPI schema for the given value,
// applying validation rules from types that implement [schema.Ruler],
// [schema.ContextRuler], or [schema.ValueRuler].
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	return schema.NewSchemaRefForValue(value)
}
