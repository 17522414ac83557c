package openapi

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Response pairs a human-readable description with the body types a status
// code may return.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes one API operation for the convenience helpers [Get],
// [Post], [Put], [Patch], and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Params      any                 // path parameter struct (fields become in:"path" parameters)
	Query       any                 // query parameter struct (fields become in:"query" parameters)
	Request     any                 // single request body type (convenience)
	Requests    []any               // multiple request body types (oneOf)
	Response    any                 // single 200 response type (convenience)
	Responses   map[string]Response // full response map (overrides Response if both set)
}

// schemaRefs generates a schema ref for each value.
func schemaRefs(vs []any) (openapi3.SchemaRefs, error) {
	refs := make(openapi3.SchemaRefs, 0, len(vs))
	for i := range vs {
		ref, err := NewSchemaRefForValue(vs[i])
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// jsonContent wraps refs as an application/json media type. A single ref is
// used directly rather than as a one-element oneOf.
func jsonContent(refs openapi3.SchemaRefs) openapi3.Content {
	schema := &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: refs}}
	if len(refs) == 1 {
		schema = refs[0]
	}
	return openapi3.Content{
		"application/json": &openapi3.MediaType{Schema: schema},
	}
}

// NewRequest generates a request body schema from the given value types.
// Multiple types document as oneOf alternatives.
func NewRequest(vs ...any) (*openapi3.RequestBodyRef, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}
	refs, err := schemaRefs(vs)
	if err != nil {
		return nil, err
	}
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{Content: jsonContent(refs)},
	}, nil
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(vs ...any) *openapi3.RequestBodyRef {
	o, err := NewRequest(vs...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse builds a responses object keyed by status code (e.g. "200",
// "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for statusCode := range vs {
		desc := vs[statusCode].Desc

		refs, err := schemaRefs(vs[statusCode].Bodies)
		if err != nil {
			return nil, err
		}

		opts = append(opts, openapi3.WithName(statusCode, &openapi3.Response{
			Description: &desc,
			Content:     jsonContent(refs),
		}))
	}

	return openapi3.NewResponses(opts...), nil
}

// NewResponseMust is like [NewResponse] but panics on error.
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// DocBase returns an empty OpenAPI 3.0.3 document to register endpoints on.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath registers op at the given path and method, creating or reusing the
// path item.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	p := s.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}

	switch method {
	case http.MethodGet:
		p.Get = op
	case http.MethodPost:
		p.Post = op
	case http.MethodPut:
		p.Put = op
	case http.MethodPatch:
		p.Patch = op
	case http.MethodDelete:
		p.Delete = op
	}

	s.Paths.Set(path, p)
}

func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	if ep.Params != nil {
		op.Parameters = append(op.Parameters, ParamsForMust(ep.Params, openapi3.ParameterInPath)...)
	}
	if ep.Query != nil {
		op.Parameters = append(op.Parameters, ParamsForMust(ep.Query, openapi3.ParameterInQuery)...)
	}

	switch {
	case len(ep.Requests) > 0:
		op.RequestBody = NewRequestMust(ep.Requests...)
	case ep.Request != nil:
		op.RequestBody = NewRequestMust(ep.Request)
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
