package openapi

import (
	"fmt"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// ParamsForMust is like [ParamsFor] but panics on error.
func ParamsForMust(value any, in string) openapi3.Parameters {
	p, err := ParamsFor(value, in)
	if err != nil {
		panic(err)
	}
	return p
}

// ParamsFor generates OpenAPI parameters from the given struct value, one per
// JSON field, sorted by name. in is the parameter location: "path", "query",
// "header", or "cookie". Path parameters are always required; elsewhere a
// parameter is required only when the field's rules make it so.
func ParamsFor(value any, in string) (openapi3.Parameters, error) {
	ref, err := NewSchemaRefForValue(value)
	if err != nil {
		return nil, err
	}
	s := ref.Value
	if s == nil || len(s.Properties) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	slices.Sort(names)

	params := make(openapi3.Parameters, 0, len(names))
	for _, name := range names {
		var p *openapi3.Parameter
		switch in {
		case openapi3.ParameterInPath:
			p = openapi3.NewPathParameter(name)
		case openapi3.ParameterInQuery:
			p = openapi3.NewQueryParameter(name)
		case openapi3.ParameterInHeader:
			p = openapi3.NewHeaderParameter(name)
		case openapi3.ParameterInCookie:
			p = openapi3.NewCookieParameter(name)
		default:
			return nil, fmt.Errorf("unknown parameter location %q", in)
		}
		if in != openapi3.ParameterInPath {
			p.Required = slices.Contains(s.Required, name)
		}
		p.Schema = s.Properties[name]
		params = append(params, &openapi3.ParameterRef{Value: p})
	}
	return params, nil
}
