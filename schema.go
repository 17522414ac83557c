package reqgate

import "context"

type (
	// Schema is the contract a schema engine must satisfy to guard a section.
	// SafeParse validates raw and returns the coerced value. A nil or empty
	// Violations list means raw was accepted; otherwise the coerced value is
	// ignored. Engine faults (panics) propagate to the caller's recovery
	// layer; the gate never converts them into rejections.
	Schema interface {
		SafeParse(raw any) (any, Violations)
	}

	// ContextSchema is optionally implemented by engines whose rules need a
	// context (e.g. datastore-backed checks). The gate prefers it over
	// SafeParse and passes the request context.
	ContextSchema interface {
		SafeParseContext(ctx context.Context, raw any) (any, Violations)
	}

	// SchemaFunc adapts a plain function to Schema.
	SchemaFunc func(raw any) (any, Violations)

	// SchemaSet binds schemas to request sections. A nil field means that
	// section is never extracted or evaluated.
	SchemaSet struct {
		Params Schema
		Query  Schema
		Body   Schema
	}

	// Sections holds section values independent of any transport: params and
	// query as key/value maps, body as an arbitrary decoded value.
	Sections struct {
		Params map[string]any
		Query  map[string]any
		Body   any
	}

	// Result reports one evaluation of a SchemaSet. Sections holds the
	// coerced section values when Valid, and the untouched input values when
	// not. ParsedParams/ParsedQuery/ParsedBody carry the engines' typed
	// outputs for sections that individually passed.
	Result struct {
		Sections     Sections
		ParsedParams any
		ParsedQuery  any
		ParsedBody   any
		Failures     []SectionError
	}
)

// SafeParse implements Schema.
func (f SchemaFunc) SafeParse(raw any) (any, Violations) { return f(raw) }

// Valid reports whether every configured section parsed.
func (r *Result) Valid() bool { return len(r.Failures) == 0 }

func (s SchemaSet) schemaFor(sec Section) Schema {
	switch sec {
	case Params:
		return s.Params
	case Query:
		return s.Query
	case Body:
		return s.Body
	}
	return nil
}

// Evaluate is EvaluateCtx with a background context.
func (s SchemaSet) Evaluate(sections Sections) *Result {
	return s.EvaluateCtx(context.Background(), sections)
}

// EvaluateCtx applies the set's schemas to the given section values in the
// fixed order params, query, body. Every configured section is evaluated —
// an early failure never skips later sections — and failures are collected
// in order. Coercion is all-or-nothing: when any section fails, the returned
// Sections are the input values, untouched.
//
// Coerced params and query are merged onto the existing section maps (coerced
// keys win, untouched keys survive); a coerced body replaces the section
// wholesale.
func (s SchemaSet) EvaluateCtx(ctx context.Context, sections Sections) *Result {
	res := &Result{Sections: sections}
	out := sections

	for _, sec := range sectionOrder {
		schema := s.schemaFor(sec)
		if schema == nil {
			continue
		}
		data, viols := safeParse(ctx, schema, rawFor(sections, sec))
		if len(viols) > 0 {
			res.Failures = append(res.Failures, SectionError{Section: sec, Errors: viols})
			continue
		}
		switch sec {
		case Params:
			res.ParsedParams = data
			if m, ok := asMap(data); ok {
				out.Params = overlay(sections.Params, m)
			}
		case Query:
			res.ParsedQuery = data
			if m, ok := asMap(data); ok {
				out.Query = overlay(sections.Query, m)
			}
		case Body:
			res.ParsedBody = data
			out.Body = data
		}
	}

	if res.Valid() {
		res.Sections = out
	}
	return res
}

// safeParse dispatches to SafeParseContext when the engine supports it.
func safeParse(ctx context.Context, schema Schema, raw any) (any, Violations) {
	if cs, ok := schema.(ContextSchema); ok {
		return cs.SafeParseContext(ctx, raw)
	}
	return schema.SafeParse(raw)
}

func rawFor(sections Sections, sec Section) any {
	switch sec {
	case Params:
		return normalizedMap(sections.Params)
	case Query:
		return normalizedMap(sections.Query)
	}
	return sections.Body
}

// normalizedMap keeps nil maps presentable to engines as empty input.
func normalizedMap(m map[string]any) any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
