package schema

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type matchRule struct {
	validation.MatchRule
	re *regexp.Regexp
}

// Match returns a validation rule that checks if a string matches the given
// regular expression. The pattern is recorded on the schema.
func Match(re *regexp.Regexp) Rule {
	return &matchRule{
		validation.Match(re),
		re,
	}
}

func (r *matchRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Pattern = r.re.String()
	return nil
}
