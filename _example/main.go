// Command example demonstrates reqgate with a net/http server serving a
// Swagger UI and gated JSON endpoints.
//
// Run:
//
//	go run ./_example
//
// Then open http://localhost:8080/swagger/ in your browser.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/Gobd/reqgate"
	"github.com/Gobd/reqgate/is"
	"github.com/Gobd/reqgate/openapi"
	"github.com/Gobd/reqgate/schema"
)

// OrderParams identifies an order from the route.
type OrderParams struct {
	ID int `json:"id"`
}

func (p *OrderParams) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&p.ID, schema.Required, schema.Min(1)),
	}
}

// CreateOrder is the request body for storing an order.
type CreateOrder struct {
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	ItemCount     int     `json:"item_count"`
	Total         float64 `json:"total"`
}

func (o *CreateOrder) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&o.CustomerName, schema.Required, schema.Length(1, 200)),
		schema.Field(&o.CustomerEmail, schema.Required, is.Email),
		schema.Field(&o.ItemCount, schema.Required, schema.Min(1)),
		schema.Field(&o.Total, schema.Required, schema.Min(0.01)),
	}
}

// ListQuery pages through orders.
type ListQuery struct {
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Sort    string `json:"sort"`
}

func (q *ListQuery) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&q.Page, schema.Min(1), schema.Default(1)),
		schema.Field(&q.PerPage, schema.Min(1), schema.Max(100), schema.Default(20)),
		schema.Field(&q.Sort, schema.In("asc", "desc"), schema.Default("asc")),
	}
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// Build the OpenAPI spec from the same types the gate validates.
	doc := openapi.DocBase("Orders API", "Demonstrates reqgate", "0.1.0")

	openapi.Put(doc, "/orders/{id}", "upsertOrder", openapi.Endpoint{
		Summary: "Create or replace an order",
		Params:  OrderParams{},
		Request: CreateOrder{},
		Responses: map[string]openapi.Response{
			"200": {Desc: "Stored order", Bodies: []any{CreateOrder{}}},
			"400": {Desc: "Validation error", Bodies: []any{reqgate.ErrorEnvelope{}}},
		},
	})

	openapi.Get(doc, "/orders", "listOrders", openapi.Endpoint{
		Summary:  "List orders",
		Query:    ListQuery{},
		Response: []CreateOrder{},
	})

	// net/http routing: point the gate at r.PathValue for path params.
	pathVars := reqgate.WithPathVars(func(r *http.Request) map[string]string {
		return map[string]string{"id": r.PathValue("id")}
	})

	upsertGate := reqgate.ValidateAll(reqgate.SchemaSet{
		Params: schema.For[OrderParams](),
		Body:   schema.For[CreateOrder](),
	}, pathVars, reqgate.WithLogger(logger))

	listGate := reqgate.ValidateAll(reqgate.SchemaSet{
		Query: schema.For[ListQuery](),
	}, reqgate.WithLogger(logger))

	mux := http.NewServeMux()

	// Swagger UI
	mux.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))

	mux.Handle("PUT /orders/{id}", upsertGate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order, _ := reqgate.BodyAs[CreateOrder](r)
		params, _ := reqgate.ParamsAs[OrderParams](r)

		logger.Info().Int("id", params.ID).Str("customer", order.CustomerName).Msg("order stored")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(order)
	})))

	mux.Handle("GET /orders", listGate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q, _ := reqgate.QueryAs[ListQuery](r)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"page":     q.Page,
			"per_page": q.PerPage,
			"sort":     q.Sort,
			"orders":   []CreateOrder{},
		})
	})))

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("Swagger UI: http://localhost:8080/swagger/")
	log.Fatal(http.ListenAndServe(":8080", mux))
}
