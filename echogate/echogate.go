package echogate

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Gobd/reqgate"
)

// resultKey stores the accepted evaluation in echo's context store.
const resultKey = "reqgate.result"

// Option configures the echo gate.
type Option func(*config)

type config struct {
	maxBodyBytes int64
	logger       zerolog.Logger
}

const defaultMaxBodyBytes = 10 << 20 // 10 MiB

func newConfig(opts []Option) *config {
	cfg := &config{
		maxBodyBytes: defaultMaxBodyBytes,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxBodyBytes caps how many request-body bytes the gate reads when a
// body schema is configured. Bodies over the cap fail the body section.
// Default: 10 MiB.
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// WithLogger sets the logger for rejected requests. The gate logs one Warn
// event per rejection and is silent on accepted requests. Default: no logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// ValidateAll evaluates every schema in set in the fixed order params, query,
// body. All configured sections are evaluated unconditionally — an early
// failure never short-circuits later sections — and failing sections are
// collected in order into one 400 envelope written with c.JSON. When every
// section passes, the coerced sections are committed to echo's context store
// and the chain advances exactly once.
//
//	e.POST("/orders/:id", createOrder, echogate.ValidateAll(reqgate.SchemaSet{
//	    Params: schema.For[OrderParams](),
//	    Body:   schema.For[CreateOrder](),
//	}))
func ValidateAll(set reqgate.SchemaSet, opts ...Option) echo.MiddlewareFunc {
	cfg := newConfig(opts)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := evaluate(c, set, cfg)

			if !res.Valid() {
				cfg.logger.Warn().
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Int("sections", len(res.Failures)).
					Msg("request rejected")
				return c.JSON(http.StatusBadRequest, reqgate.NewErrorEnvelope(res.Failures))
			}

			if set.Body != nil {
				rewriteBody(c, res.Sections.Body)
			}
			c.Set(resultKey, res)
			return next(c)
		}
	}
}

// evaluate extracts the configured sections from echo's context and runs the
// schema set. A body that cannot be read or decoded fails the body section
// without consulting its schema; params and query are still evaluated so the
// envelope stays complete.
func evaluate(c echo.Context, set reqgate.SchemaSet, cfg *config) *reqgate.Result {
	sections := reqgate.Sections{}
	if set.Params != nil {
		sections.Params = paramValues(c)
	}
	if set.Query != nil {
		sections.Query = queryValues(c)
	}

	var bodyViols reqgate.Violations
	if set.Body != nil {
		sections.Body, bodyViols = readBody(c, cfg.maxBodyBytes)
		if len(bodyViols) > 0 {
			set.Body = nil
		}
	}

	res := set.EvaluateCtx(c.Request().Context(), sections)
	if len(bodyViols) > 0 {
		// body is last in section order, so appending keeps meta ordered
		res.Failures = append(res.Failures, reqgate.SectionError{Section: reqgate.Body, Errors: bodyViols})
		res.Sections = sections
	}
	return res
}

// paramValues lifts echo's route params into a section map.
func paramValues(c echo.Context) map[string]any {
	names := c.ParamNames()
	m := make(map[string]any, len(names))
	for _, name := range names {
		m[name] = c.Param(name)
	}
	return m
}

// queryValues flattens the query string into a section map. Single-valued
// keys become string, repeated keys keep []string.
func queryValues(c echo.Context) map[string]any {
	q := c.QueryParams()
	m := make(map[string]any, len(q))
	for k, vs := range q {
		if len(vs) == 1 {
			m[k] = vs[0]
			continue
		}
		m[k] = append([]string(nil), vs...)
	}
	return m
}

// readBody reads the request body up to limit and decodes it as JSON. The
// original bytes are restored so downstream readers are unaffected. An empty
// body yields a nil raw value. Read and decode failures are body-section
// violations, not errors.
func readBody(c echo.Context, limit int64) (any, reqgate.Violations) {
	r := c.Request()
	if r.Body == nil {
		return nil, nil
	}

	b, err := io.ReadAll(http.MaxBytesReader(c.Response(), r.Body, limit))
	if err != nil {
		return nil, reqgate.Fail("cannot read request body: " + err.Error())
	}
	r.Body = io.NopCloser(bytes.NewReader(b))

	if len(b) == 0 {
		return nil, nil
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, reqgate.Fail("invalid JSON: " + err.Error())
	}
	return raw, nil
}

// rewriteBody swaps the request body for the marshaled coerced value so
// handlers that bind the body themselves see coerced data.
func rewriteBody(c echo.Context, coerced any) {
	b, err := json.Marshal(coerced)
	if err != nil {
		return
	}
	r := c.Request()
	r.Body = io.NopCloser(bytes.NewReader(b))
	r.ContentLength = int64(len(b))
}
