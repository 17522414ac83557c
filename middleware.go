package reqgate

import "net/http"

// Middleware wraps an http.Handler with request gating.
type Middleware func(http.Handler) http.Handler

// Validate returns middleware that checks one section against schema and
// nothing more: on success the chain advances with the request unmodified
// (coerced output is discarded), on failure a single 400 envelope with that
// section's violations is written and the chain never advances.
func Validate(section Section, schema Schema, opts ...Option) Middleware {
	g := gate{cfg: newConfig(opts), set: setFor(section, schema)}
	return g.middleware()
}

// Process is [Validate] plus coercion commit: on success the section's
// coerced output is written back before advancing, merged onto the existing
// params or query map, or replacing the body wholesale.
func Process(section Section, schema Schema, opts ...Option) Middleware {
	g := gate{cfg: newConfig(opts), set: setFor(section, schema), commit: true}
	return g.middleware()
}

// ValidateAll is the primary entry point: it evaluates every schema in set
// in the fixed order params, query, body. All configured sections are
// evaluated unconditionally — an early failure never short-circuits later
// sections — and failing sections are collected in order into one 400
// envelope. When every section passes, all coerced outputs are committed
// atomically and the chain advances exactly once.
func ValidateAll(set SchemaSet, opts ...Option) Middleware {
	g := gate{cfg: newConfig(opts), set: set, commit: true}
	return g.middleware()
}

func setFor(section Section, schema Schema) SchemaSet {
	var set SchemaSet
	switch section {
	case Params:
		set.Params = schema
	case Query:
		set.Query = schema
	case Body:
		set.Body = schema
	}
	return set
}

// gate is one configured middleware instance. commit=false is the pure
// validation mode of [Validate].
type gate struct {
	cfg    *config
	set    SchemaSet
	commit bool
}

func (g gate) middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := g.evaluate(w, r)

			if !res.Valid() {
				g.reject(w, r, res.Failures)
				return
			}

			if g.commit {
				if g.set.Body != nil {
					rewriteBody(r, res.Sections.Body)
				}
				r = withResult(r, res)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// evaluate extracts the configured sections and runs the schema set.
// A body that cannot be read or decoded fails the body section without
// consulting its schema; params and query are still evaluated so the
// envelope stays complete.
func (g gate) evaluate(w http.ResponseWriter, r *http.Request) *Result {
	sections := Sections{}
	if g.set.Params != nil {
		sections.Params = paramValues(r, g.cfg.pathVars)
	}
	if g.set.Query != nil {
		sections.Query = queryValues(r)
	}

	set := g.set
	var bodyViols Violations
	if g.set.Body != nil {
		sections.Body, bodyViols = readBody(w, r, g.cfg.maxBodyBytes)
		if len(bodyViols) > 0 {
			set.Body = nil
		}
	}

	res := set.EvaluateCtx(r.Context(), sections)
	if len(bodyViols) > 0 {
		// body is last in section order, so appending keeps meta ordered
		res.Failures = append(res.Failures, SectionError{Section: Body, Errors: bodyViols})
		res.Sections = sections
	}
	return res
}

func (g gate) reject(w http.ResponseWriter, r *http.Request, failures []SectionError) {
	g.cfg.logger.Warn().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("sections", len(failures)).
		Msg("request rejected")

	if g.cfg.onError != nil {
		g.cfg.onError(w, r, failures)
		return
	}
	WriteEnvelope(w, failures)
}
