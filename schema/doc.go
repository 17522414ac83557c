// Package schema binds ozzo-validation to the gate's schema contract, with
// every rule documenting itself into OpenAPI 3 schemas.
//
// Declare rules by implementing [Ruler] on the struct a section coerces
// into:
//
//	type CreateOrder struct {
//	    Name string `json:"name"`
//	    Qty  int    `json:"qty"`
//	}
//
//	func (o *CreateOrder) Rules() []*FieldRules {
//	    return []*FieldRules{
//	        Field(&o.Name, Required, Length(1, 100)),
//	        Field(&o.Qty, Min(1), Default(1)),
//	    }
//	}
//
// Then bind a section with [For]:
//
//	set := reqgate.SchemaSet{Body: schema.For[CreateOrder]()}
//
// SafeParse decodes the raw section into a fresh value (numeric strings from
// params and query coerce into numeric fields), fills declared defaults,
// normalizes, validates, and flattens any rule failures into ordered
// violations.
//
// [Validate], [UnmarshalAndValidate] and [DecodeAndValidate] remain usable
// on their own, outside any gate.
package schema
