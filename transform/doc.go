// Package transform provides struct transformation utilities for mutating
// string fields recursively within structs. These utilities are commonly
// used inside [schema.Normalizer] implementations:
//
//	func (s *signup) Normalize() {
//	    transform.StructTrimSpace(s)
//	    transform.StructToLower(s)
//	}
package transform
