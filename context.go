package reqgate

import (
	"context"
	"net/http"
)

type resultCtxKey struct{}

// withResult stashes a committed evaluation on the request context.
func withResult(r *http.Request, res *Result) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), resultCtxKey{}, res))
}

// ResultFrom returns the evaluation committed for this request by [Process]
// or [ValidateAll], if the gate ran and accepted it.
func ResultFrom(r *http.Request) (*Result, bool) {
	res, ok := r.Context().Value(resultCtxKey{}).(*Result)
	return res, ok
}

// ParamsFrom returns the request's params section: the committed (merged)
// map when a gate accepted the request, otherwise the raw route vars.
func ParamsFrom(r *http.Request) map[string]any {
	if res, ok := ResultFrom(r); ok && res.Sections.Params != nil {
		return res.Sections.Params
	}
	return paramValues(r, defaultPathVars)
}

// QueryFrom returns the request's query section: the committed (merged) map
// when a gate accepted the request, otherwise the raw query values.
func QueryFrom(r *http.Request) map[string]any {
	if res, ok := ResultFrom(r); ok && res.Sections.Query != nil {
		return res.Sections.Query
	}
	return queryValues(r)
}

// BodyFrom returns the committed body section, or nil when no gate committed
// one. It never reads the request body itself.
func BodyFrom(r *http.Request) any {
	if res, ok := ResultFrom(r); ok {
		return res.Sections.Body
	}
	return nil
}

// ParamsAs returns the params engine's coerced output asserted to T.
//
//	filters, ok := reqgate.ParamsAs[*OrderParams](r)
func ParamsAs[T any](r *http.Request) (T, bool) {
	return parsedAs[T](r, func(res *Result) any { return res.ParsedParams })
}

// QueryAs returns the query engine's coerced output asserted to T.
func QueryAs[T any](r *http.Request) (T, bool) {
	return parsedAs[T](r, func(res *Result) any { return res.ParsedQuery })
}

// BodyAs returns the body engine's coerced output asserted to T.
//
//	order, ok := reqgate.BodyAs[*CreateOrder](r)
func BodyAs[T any](r *http.Request) (T, bool) {
	return parsedAs[T](r, func(res *Result) any { return res.ParsedBody })
}

func parsedAs[T any](r *http.Request, pick func(*Result) any) (T, bool) {
	var zero T
	res, ok := ResultFrom(r)
	if !ok {
		return zero, false
	}
	v, ok := pick(res).(T)
	if !ok {
		return zero, false
	}
	return v, true
}
