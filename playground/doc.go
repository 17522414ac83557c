// Package playground adapts go-playground/validator struct tags to the gate's
// schema contract. It suits services that already carry `validate:"..."` tags
// on their request types and don't need rule-based OpenAPI generation.
//
//	type createUser struct {
//	    Name  string `json:"name" validate:"required"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//
//	set := reqgate.SchemaSet{Body: playground.For[createUser]()}
//	mux.Handle("/users", reqgate.ValidateAll(set)(createHandler))
//
// Violation paths use json field names, and each failing tag maps to a
// readable message ("required" becomes "this field is required"). Pass
// [Messages] to For to replace messages per tag.
package playground
