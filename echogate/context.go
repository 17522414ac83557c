package echogate

import (
	"github.com/labstack/echo/v4"

	"github.com/Gobd/reqgate"
)

// ResultFrom returns the evaluation committed for this request by
// [ValidateAll], if the gate ran and accepted it.
func ResultFrom(c echo.Context) (*reqgate.Result, bool) {
	res, ok := c.Get(resultKey).(*reqgate.Result)
	return res, ok
}

// Params returns the request's params section: the committed (merged) map
// when the gate accepted the request, otherwise the raw route params.
func Params(c echo.Context) map[string]any {
	if res, ok := ResultFrom(c); ok && res.Sections.Params != nil {
		return res.Sections.Params
	}
	return paramValues(c)
}

// Query returns the request's query section: the committed (merged) map when
// the gate accepted the request, otherwise the raw query values.
func Query(c echo.Context) map[string]any {
	if res, ok := ResultFrom(c); ok && res.Sections.Query != nil {
		return res.Sections.Query
	}
	return queryValues(c)
}

// Body returns the committed body section, or nil when no gate committed one.
// It never reads the request body itself.
func Body(c echo.Context) any {
	if res, ok := ResultFrom(c); ok {
		return res.Sections.Body
	}
	return nil
}

// ParamsAs returns the params engine's coerced output asserted to T.
func ParamsAs[T any](c echo.Context) (T, bool) {
	return parsedAs[T](c, func(res *reqgate.Result) any { return res.ParsedParams })
}

// QueryAs returns the query engine's coerced output asserted to T.
func QueryAs[T any](c echo.Context) (T, bool) {
	return parsedAs[T](c, func(res *reqgate.Result) any { return res.ParsedQuery })
}

// BodyAs returns the body engine's coerced output asserted to T.
//
//	order, ok := echogate.BodyAs[CreateOrder](c)
func BodyAs[T any](c echo.Context) (T, bool) {
	return parsedAs[T](c, func(res *reqgate.Result) any { return res.ParsedBody })
}

func parsedAs[T any](c echo.Context, pick func(*reqgate.Result) any) (T, bool) {
	var zero T
	res, ok := ResultFrom(c)
	if !ok {
		return zero, false
	}
	v, ok := pick(res).(T)
	if !ok {
		return zero, false
	}
	return v, true
}
