package openapi

import (
	"bytes"
	"context"
	"embed"
	"io/fs"
	"net/http"
	"text/template"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed swagger/*
var swagFS embed.FS

// swaggerServer serves the rendered UI page, the raw spec, and any static
// assets bundled alongside the page.
type swaggerServer struct {
	index  []byte
	spec   []byte
	assets http.Handler
}

func (s *swaggerServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "", "/":
		_, _ = w.Write(s.index)
	case "/docs.json":
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(s.spec)
	default:
		s.assets.ServeHTTP(w, r)
	}
}

// renderIndex executes the embedded UI page template with the spec inlined,
// so the page needs no extra round trip to load it.
func renderIndex(specJSON []byte) ([]byte, error) {
	tmpl, err := template.ParseFS(swagFS, "swagger/index.html")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"Docs": string(specJSON)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SwaggerHandler returns an http.Handler that serves the Swagger UI for the
// given OpenAPI spec. The spec is validated first, so a malformed document
// fails at startup rather than in the browser. The prefix is stripped
// automatically, so just mount it:
//
//	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", spec))
func SwaggerHandler(prefix string, s *openapi3.T) (http.Handler, error) {
	if err := s.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	index, err := renderIndex(specJSON)
	if err != nil {
		return nil, err
	}

	static, err := fs.Sub(swagFS, "swagger")
	if err != nil {
		return nil, err
	}

	srv := &swaggerServer{
		index:  index,
		spec:   specJSON,
		assets: http.FileServer(http.FS(static)),
	}
	return http.StripPrefix(prefix, srv), nil
}

// SwaggerHandlerMust is like SwaggerHandler but panics on error.
func SwaggerHandlerMust(prefix string, s *openapi3.T) http.Handler {
	h, err := SwaggerHandler(prefix, s)
	if err != nil {
		panic(err)
	}
	return h
}
