// Package is provides format validation rules for common string shapes
// (emails, UUIDs, URLs, IPs, and the like), backed by govalidator.
//
// Every rule implements [schema.Rule], so it documents its format token into
// generated OpenAPI schemas:
//
//	schema.Field(&u.Email, schema.Required, is.Email)
//
// Empty strings are accepted by every rule. Combine with [schema.Required]
// when the field must be present.
package is
