package schema

import (
	"errors"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

type uniqueRule struct {
	f    func(a int) any
	desc string
}

// Unique checks that all elements of a slice are distinct under f, which
// maps an element index to its comparison key.
func Unique(f func(a int) any, desc string) Rule {
	return uniqueRule{f: f, desc: desc}
}

func (r uniqueRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.UniqueItems = true
	return nil
}

// Validate checks if the given value is valid or not.
func (r uniqueRule) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return nil
	}
	rv = reflect.Indirect(rv)

	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return errors.New("must be slice")
	}

	l := rv.Len()
	seen := make(map[any]struct{}, l)
	for i := range l {
		seen[r.f(i)] = struct{}{}
	}
	if len(seen) != l {
		return errors.New("not unique")
	}
	return nil
}
