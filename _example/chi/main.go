// Command chi demonstrates reqgate with a chi router. Path parameters are
// read from chi's route context via WithPathVars.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then open http://localhost:8080/swagger/ in your browser.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Gobd/reqgate"
	"github.com/Gobd/reqgate/openapi"
	"github.com/Gobd/reqgate/schema"
)

type OrderParams struct {
	ID int `json:"id"`
}

func (p *OrderParams) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&p.ID, schema.Required, schema.Min(1)),
	}
}

type Order struct {
	CustomerName string  `json:"customer_name"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

func (o *Order) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&o.CustomerName, schema.Required, schema.Length(1, 200)),
		schema.Field(&o.ItemCount, schema.Required, schema.Min(1)),
		schema.Field(&o.Total, schema.Required, schema.Min(0.01)),
	}
}

// chiPathVars exposes chi's URL params to the gate.
func chiPathVars(r *http.Request) map[string]string {
	params := chi.RouteContext(r.Context()).URLParams
	vars := make(map[string]string, len(params.Keys))
	for i, k := range params.Keys {
		vars[k] = params.Values[i]
	}
	return vars
}

func main() {
	doc := openapi.DocBase("Example API (chi)", "Demonstrates reqgate with chi", "0.1.0")

	openapi.Put(doc, "/orders/{id}", "upsertOrder", openapi.Endpoint{
		Summary: "Create or replace an order",
		Params:  OrderParams{},
		Request: Order{},
		Responses: map[string]openapi.Response{
			"200": {Desc: "Stored order", Bodies: []any{Order{}}},
			"400": {Desc: "Validation error", Bodies: []any{reqgate.ErrorEnvelope{}}},
		},
	})

	gate := reqgate.ValidateAll(reqgate.SchemaSet{
		Params: schema.For[OrderParams](),
		Body:   schema.For[Order](),
	}, reqgate.WithPathVars(chiPathVars))

	r := chi.NewRouter()

	r.Handle("/swagger/*", openapi.SwaggerHandlerMust("/swagger/", doc))

	r.Method(http.MethodPut, "/orders/{id}", gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order, _ := reqgate.BodyAs[Order](r)
		params, _ := reqgate.ParamsAs[OrderParams](r)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": params.ID, "order": order})
	})))

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("Swagger UI: http://localhost:8080/swagger/")
	log.Fatal(http.ListenAndServe(":8080", r))
}
