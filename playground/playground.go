package playground

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/Gobd/reqgate"
	"github.com/Gobd/reqgate/schema"
)

// Messages maps a validator tag to a replacement message. The message may
// reference the tag's parameter with %s:
//
//	playground.For[createUser](playground.Messages{
//	    "required": "is mandatory",
//	    "min":      "needs at least %s",
//	})
type Messages map[string]string

// validate is shared across all parsers. Field names in violations come from
// json tags.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Parser is a section schema producing values of type T, validated with
// `validate:"..."` struct tags. T should be a struct type; other kinds decode
// without validation.
type Parser[T any] struct {
	overrides Messages
}

// For returns a section schema for T. Optional overrides replace the built-in
// message for a validator tag.
func For[T any](overrides ...Messages) *Parser[T] {
	p := &Parser[T]{}
	for _, m := range overrides {
		if p.overrides == nil {
			p.overrides = Messages{}
		}
		for tag, msg := range m {
			p.overrides[tag] = msg
		}
	}
	return p
}

// SafeParse implements reqgate.Schema.
//
// A nil raw value (an absent body) parses as the zero T, so required tags
// still fire. The returned value is a T, never a *T.
func (p *Parser[T]) SafeParse(raw any) (any, reqgate.Violations) {
	dst := new(T)
	if raw != nil {
		if err := schema.Decode(raw, dst); err != nil {
			return nil, decodeViolations(err)
		}
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, p.violations(verrs)
		}
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// T is not a struct, nothing to validate.
			return *dst, nil
		}
		return nil, reqgate.Fail(err.Error())
	}
	return *dst, nil
}

func (p *Parser[T]) violations(verrs validator.ValidationErrors) reqgate.Violations {
	out := make(reqgate.Violations, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, reqgate.Violation{
			Path:    pathOf(fe),
			Message: p.message(fe),
		})
	}
	return out
}

// pathOf turns a field error's namespace ("createUser.items[1].name") into
// path elements ("items", "1", "name"). The leading struct name is dropped.
func pathOf(fe validator.FieldError) []string {
	ns := fe.Namespace()
	i := strings.Index(ns, ".")
	if i < 0 {
		return []string{fe.Field()}
	}
	ns = ns[i+1:]
	ns = strings.ReplaceAll(ns, "[", ".")
	ns = strings.ReplaceAll(ns, "]", "")
	return strings.Split(ns, ".")
}

func (p *Parser[T]) message(fe validator.FieldError) string {
	if m, ok := p.overrides[fe.Tag()]; ok {
		if strings.Contains(m, "%s") {
			return fmt.Sprintf(m, fe.Param())
		}
		return m
	}

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "len":
		return "must have length " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "url":
		return "must be a valid URL"
	case "gte":
		return "must be " + fe.Param() + " or greater"
	case "lte":
		return "must be " + fe.Param() + " or less"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

// decodeViolations converts a mapstructure decode failure into violations,
// one per offending field. The messages already name the field, so paths are
// left at the root.
func decodeViolations(err error) reqgate.Violations {
	var merr *mapstructure.Error
	if errors.As(err, &merr) {
		out := make(reqgate.Violations, 0, len(merr.Errors))
		for _, msg := range merr.Errors {
			out = append(out, reqgate.Violation{Path: []string{}, Message: msg})
		}
		return out
	}
	return reqgate.Fail(err.Error())
}
