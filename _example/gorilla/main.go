// Command gorilla demonstrates reqgate with a gorilla/mux router. Path
// parameters come from mux.Vars, which is reqgate's default source, so no
// extra wiring is needed.
//
// Run:
//
//	cd _example/gorilla && go run .
//
// Then open http://localhost:8080/swagger/ in your browser.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

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

func main() {
	doc := openapi.DocBase("Example API (gorilla)", "Demonstrates reqgate with gorilla/mux", "0.1.0")

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
	})

	r := mux.NewRouter()

	r.PathPrefix("/swagger/").Handler(openapi.SwaggerHandlerMust("/swagger/", doc))

	r.Handle("/orders/{id}", gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order, _ := reqgate.BodyAs[Order](r)
		params, _ := reqgate.ParamsAs[OrderParams](r)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": params.ID, "order": order})
	}))).Methods(http.MethodPut)

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("Swagger UI: http://localhost:8080/swagger/")
	log.Fatal(http.ListenAndServe(":8080", r))
}
