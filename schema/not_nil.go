package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotNil checks that a value is not nil. Unlike [Required] it accepts empty
// non-nil values such as "" or 0.
var NotNil = notNilRule{Rule: validation.NotNil}

type notNilRule struct {
	validation.Rule
}

func (r notNilRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Nullable = false
	return nil
}
