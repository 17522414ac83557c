// Package openapi generates OpenAPI 3 specifications from struct types that
// implement [schema.Ruler]. It also provides helpers for registering
// endpoints, documenting path and query parameters, and serving Swagger UI.
//
// Use [DocBase] to create a base document, register endpoints with [Get],
// [Post], [Put], [Patch], or [Delete], and serve the Swagger UI with
// [SwaggerHandlerMust]:
//
//	doc := openapi.DocBase("orders-api", "Order service", "1.0")
//	openapi.Put(doc, "/orders/{id}", "replaceOrder", openapi.Endpoint{
//	    Params:   OrderParams{},
//	    Request:  ReplaceOrder{},
//	    Response: Order{},
//	})
//	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", doc))
package openapi
