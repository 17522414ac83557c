package schema

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type eachRule struct {
	validation.EachRule
	rules []Rule
}

// Each applies the given rules to every element of a slice, array, or map.
func Each(rules ...Rule) Rule {
	return &eachRule{validation.Each(convertRules(rules...)...), rules}
}

// Describe forwards to every element rule so their schema effects land on
// the collection's items schema.
func (r *eachRule) Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for i := range r.rules {
		if err := r.rules[i].Describe(name, schema, ref); err != nil {
			return err
		}
	}
	return nil
}
