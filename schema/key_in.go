package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

type keyInRule struct {
	values []string
}

// KeyIn checks that every key of a map (or of a struct's JSON form) is one
// of the allowed values.
func KeyIn(values ...string) Rule {
	return &keyInRule{values}
}

func (r *keyInRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDesc(ref, fmt.Sprintf("keys must be in (%s)", strings.Join(r.values, ",")))
	return nil
}

// Validate round-trips the value through JSON to get at its keys, which
// covers maps and tagged structs alike.
func (r keyInRule) Validate(value any) error {
	allowed := make(map[string]bool, len(r.values))
	for _, v := range r.values {
		allowed[v] = true
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var keyed map[string]any
	if err := json.Unmarshal(b, &keyed); err != nil {
		return err
	}

	for k := range keyed {
		if !allowed[k] {
			return fmt.Errorf("key '%s' not allowed", k)
		}
	}
	return nil
}
