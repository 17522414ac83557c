package schema

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type stringRule struct {
	validation.StringRule
	desc string
}

// NewStringRule builds a string rule from a predicate, using desc as both
// the failure message and the schema description.
func NewStringRule(validator func(string) bool, desc string) Rule {
	return stringRule{validation.NewStringRule(validator, desc), desc}
}

// NewStringRuleWithError is like [NewStringRule] with a distinct failure
// error.
func NewStringRuleWithError(validator func(string) bool, err validation.Error, desc string) Rule {
	return stringRule{validation.NewStringRuleWithError(validator, err), desc}
}

// NewStringRuleDecimalMax limits how many decimal places a numeric string
// may carry.
func NewStringRuleDecimalMax(i uint) Rule {
	desc := fmt.Sprintf("no more than %d decimals", i)
	return stringRule{
		validation.NewStringRule(func(s string) bool {
			spl := strings.Split(s, ".")
			if len(spl) < 2 {
				return true
			}
			return len(spl[1]) <= int(i)
		}, desc),
		desc,
	}
}

func (r stringRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDesc(ref, r.desc)
	return nil
}
