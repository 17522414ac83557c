package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type thresholdRule struct {
	validation.ThresholdRule
	threshold any
	isMin     bool
}

// Min checks that a value is greater than or equal to threshold. Numeric
// strings are parsed to the threshold's type first, so coerced query and
// path values compare numerically. Empty values pass; pair with [Required]
// to reject them.
func Min(threshold any) Rule {
	return thresholdRule{validation.Min(threshold), threshold, true}
}

// Max checks that a value is less than or equal to threshold. See [Min] for
// the numeric-string handling.
func Max(threshold any) Rule {
	return thresholdRule{validation.Max(threshold), threshold, false}
}

func (r thresholdRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Type.Is(openapi3.TypeString) {
		ref.Value.Format = fmt.Sprintf("%T", r.threshold)
	}
	f, err := toFloat(r.threshold)
	if err != nil {
		return err
	}
	if r.isMin {
		ref.Value.Min = &f
	} else {
		ref.Value.Max = &f
	}
	return nil
}

// Validate checks if the given value is valid or not.
func (r thresholdRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}

	if reflect.ValueOf(value).Kind() != reflect.String {
		return r.ThresholdRule.Validate(value)
	}

	// json.Number and friends
	if v, ok := value.(fmt.Stringer); ok {
		value = v.String()
	}

	parsed, err := parseAs(value.(string), reflect.ValueOf(r.threshold).Kind())
	if err != nil {
		return err
	}
	return r.ThresholdRule.Validate(parsed)
}

// parseAs converts a numeric string to the Go type family of the threshold
// so ozzo compares like with like.
func parseAs(s string, kind reflect.Kind) (any, error) {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.New("must be int64")
		}
		return v, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, errors.New("must be uint64")
		}
		return v, nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.New("must be float64")
		}
		return v, nil
	}
	return s, nil
}

var floatType = reflect.TypeOf(float64(0))

func toFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	if !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("cannot convert %v to float64", v.Type())
	}
	return v.Convert(floatType).Float(), nil
}
