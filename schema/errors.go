package schema

import (
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Gobd/reqgate"
)

// Errors is a map of field names to their validation errors. It is an alias
// for [validation.Errors] from ozzo-validation and implements the error
// interface with a JSON-friendly string representation.
type Errors = validation.Errors

// toViolations flattens a validation error into ordered violations. Nested
// [validation.Errors] maps (embedded structs, slices, maps) become one
// violation per leaf with the full key path, sorted by key at every level so
// output order is stable. Any other error becomes a single root violation.
func toViolations(err error) reqgate.Violations {
	if err == nil {
		return nil
	}
	var out reqgate.Violations
	flattenErr(err, nil, &out)
	return out
}

func flattenErr(err error, path []string, out *reqgate.Violations) {
	errs, ok := err.(validation.Errors)
	if !ok {
		*out = append(*out, reqgate.Violation{Path: copyPath(path), Message: err.Error()})
		return
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		flattenErr(errs[k], append(path, k), out)
	}
}

func copyPath(path []string) []string {
	if len(path) == 0 {
		return []string{}
	}
	return append([]string(nil), path...)
}
