package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Nil checks that a value is nil.
var Nil = absentRule{validation.Nil, false}

// Empty checks that a non-nil value is empty.
var Empty = absentRule{validation.Empty, true}

type absentRule struct {
	validation.Rule
	skipNil bool
}

// When keeps the schema-aware rule type when chained; the wrapped ozzo rule
// would otherwise be returned and lose Describe.
func (r absentRule) When(_ bool) absentRule {
	return r
}

func (r absentRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.skipNil {
		appendDesc(ref, "empty")
	} else {
		appendDesc(ref, "null")
	}
	return nil
}
