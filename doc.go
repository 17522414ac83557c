// Package reqgate guards HTTP handlers behind declarative request
// validation. A request has three validatable sections (route params, URL
// query, JSON body), each optionally bound to a schema. The gate either
// advances the chain exactly once with every section's coerced output
// committed, or writes a single 400 envelope listing all failing sections
// and never advances.
//
// Build schemas with the sibling engine bindings and mount the gate as
// ordinary middleware:
//
//	set := reqgate.SchemaSet{
//	    Query: schema.For[ListOrders](),
//	    Body:  schema.For[CreateOrder](),
//	}
//	r.Handle("/orders", reqgate.ValidateAll(set)(createOrder)).Methods("POST")
//
// Downstream handlers read committed sections with [ParamsFrom], [QueryFrom]
// and [BodyFrom], or typed via [ParamsAs], [QueryAs] and [BodyAs].
//
// Any engine can guard a section by satisfying [Schema]; nothing in this
// package evaluates rules itself.
//
// Sub-packages:
//   - schema – ozzo-validation engine binding with OpenAPI-aware rules
//   - is – common string format rules
//   - playground – go-playground/validator engine binding
//   - openapi – OpenAPI schema generation, parameter docs, Swagger UI serving
//   - echogate – the gate as echo middleware
//   - transform – struct string transformation utilities
package reqgate
