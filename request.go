package reqgate

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// queryValues flattens the query string into a section map. Single-valued
// keys become string, repeated keys keep []string.
func queryValues(r *http.Request) map[string]any {
	q := r.URL.Query()
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

// paramValues lifts the router's vars into a section map.
func paramValues(r *http.Request, vars PathVarsFunc) map[string]any {
	src := vars(r)
	m := make(map[string]any, len(src))
	for k, v := range src {
		m[k] = v
	}
	return m
}

// readBody reads the request body up to limit and decodes it as JSON. The
// original bytes are restored on r.Body so downstream readers are unaffected
// whether or not the gate later commits a coerced body. An empty body yields
// a nil raw value (engines see zero input and required rules fire). Read and
// decode failures are body-section violations, not errors.
func readBody(w http.ResponseWriter, r *http.Request, limit int64) (any, Violations) {
	if r.Body == nil {
		return nil, nil
	}

	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		return nil, Fail("cannot read request body: " + err.Error())
	}
	r.Body = io.NopCloser(bytes.NewReader(b))

	if len(b) == 0 {
		return nil, nil
	}

	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, Fail("invalid JSON: " + err.Error())
	}
	return raw, nil
}

// rewriteBody swaps the request body for the marshaled coerced value so
// handlers that decode the body themselves see coerced data.
func rewriteBody(r *http.Request, coerced any) {
	b, err := json.Marshal(coerced)
	if err != nil {
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(b))
	r.ContentLength = int64(len(b))
}
