package schema

import (
	"context"
	"reflect"
	"strings"
)

// MissingRules returns the names of exported struct fields with no
// corresponding entry in the Ruler's Rules(). Embedded Ruler fields are
// expanded and their inner fields checked too.
//
// Fields tagged json:"-", docs:"skip", or validate:"-" are treated as
// intentionally rule-free and skipped.
//
// Use in tests to catch forgotten fields:
//
//	assert.Empty(t, schema.MissingRules(&MyStruct{}))
//	assert.Empty(t, schema.MissingRules(&MyStruct{}, "OptionalField"))
func MissingRules(structPtr any, exclude ...string) []string {
	var fields []*FieldRules
	switch r := structPtr.(type) {
	case Ruler:
		fields = r.Rules()
	case ContextRuler:
		fields = r.Rules(context.Background())
	default:
		return nil
	}

	fields = expandFields(context.Background(), structPtr, fields)

	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	covered := map[string]bool{}
	for _, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			continue
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			continue
		}
		covered[fieldKey(*sf)] = true
	}

	// The exclude list accepts Go field names and json tag names alike.
	excl := map[string]bool{}
	for _, e := range exclude {
		excl[e] = true
	}

	return uncoveredFields(structVal.Type(), excl, covered)
}

// fieldKey returns the json tag name if present, otherwise the Go field name.
func fieldKey(sf reflect.StructField) string {
	tag := strings.Split(sf.Tag.Get("json"), ",")[0]
	if tag != "" && tag != "-" {
		return tag
	}
	return sf.Name
}

func uncoveredFields(t reflect.Type, excl, covered map[string]bool) []string {
	var missing []string
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous {
			inner := sf.Type
			if inner.Kind() == reflect.Ptr {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				missing = append(missing, uncoveredFields(inner, excl, covered)...)
			}
			continue
		}
		if ruleFreeField(sf) {
			continue
		}
		key := fieldKey(sf)
		if excl[key] || excl[sf.Name] || covered[key] {
			continue
		}
		missing = append(missing, key)
	}
	return missing
}

func ruleFreeField(sf reflect.StructField) bool {
	if !sf.IsExported() {
		return true
	}
	if strings.Split(sf.Tag.Get("json"), ",")[0] == "-" {
		return true
	}
	if strings.Split(sf.Tag.Get("docs"), ",")[0] == "skip" {
		return true
	}
	return sf.Tag.Get("validate") == "-"
}
