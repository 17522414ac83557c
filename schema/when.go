package schema

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// WhenRule applies rules conditionally: one set when the condition holds,
// and an optional alternative set (via [WhenRule.Else]) when it does not.
type WhenRule struct {
	validation.WhenRule
	desc      string
	whenRules []Rule
	elseRules []Rule
}

// When returns a rule applying the given rules only while condition is true.
// desc names the condition in the generated documentation.
func When(condition bool, desc string, rules ...Rule) *WhenRule {
	return &WhenRule{
		WhenRule:  validation.When(condition, convertRules(rules...)...),
		desc:      desc,
		whenRules: rules,
	}
}

// Else sets the rules applied when the [When] condition is false.
func (r *WhenRule) Else(rules ...Rule) *WhenRule {
	r.WhenRule = r.WhenRule.Else(convertRules(rules...)...)
	r.elseRules = rules
	return r
}

// Describe appends a readable summary of both branches to the schema
// description.
func (r *WhenRule) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if len(r.whenRules) > 0 {
		desc, err := summarizeRules(name, r.whenRules)
		if err != nil {
			return err
		}
		if desc != "" {
			if r.desc != "" {
				appendDesc(ref, fmt.Sprintf("when %s: %s", r.desc, desc))
			} else {
				appendDesc(ref, desc)
			}
		}
	}

	if len(r.elseRules) > 0 {
		desc, err := summarizeRules(name, r.elseRules)
		if err != nil {
			return err
		}
		if desc != "" {
			appendDesc(ref, "else: "+desc)
		}
	}
	return nil
}

// summarizeRules runs Describe on each rule against scratch schemas and
// renders the resulting mutations as a short comma-joined summary.
func summarizeRules(name string, rules []Rule) (string, error) {
	if len(rules) == 0 {
		return "", nil
	}

	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}
	for _, r := range rules {
		if err := r.Describe(name, schema, ref); err != nil {
			return "", err
		}
	}

	var parts []string
	if ref.Value.Description != "" {
		parts = append(parts, ref.Value.Description)
	}
	if len(schema.Required) > 0 {
		parts = append(parts, "required")
	}
	if ref.Value.Min != nil {
		parts = append(parts, fmt.Sprintf("min %g", *ref.Value.Min))
	}
	if ref.Value.Max != nil {
		parts = append(parts, fmt.Sprintf("max %g", *ref.Value.Max))
	}
	if len(ref.Value.Enum) > 0 {
		vals := make([]string, len(ref.Value.Enum))
		for i, v := range ref.Value.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if ref.Value.UniqueItems {
		parts = append(parts, "unique")
	}
	return strings.Join(parts, ", "), nil
}
