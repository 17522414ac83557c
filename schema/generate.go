package schema

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// NewSchemaRefForValue generates an OpenAPI schema for the given value.
// Types that implement [Ruler], [ContextRuler], or [ValueRuler] get their
// rules' Describe output folded into the generated schema, so required
// markers, enums, bounds, and descriptions stay in sync with validation.
func NewSchemaRefForValue(value any) (*openapi3.SchemaRef, error) {
	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(ruleCustomizer(value)))
	return g.NewSchemaRefForValue(value, nil)
}

// ruleCustomizer returns the openapi3gen customizer that annotates each
// generated (sub)schema from the type's validation rules. The value is only
// needed to resolve interface-typed fields to whatever concrete type they
// hold at generation time.
func ruleCustomizer(value any) openapi3gen.SchemaCustomizerFn {
	return func(name string, t reflect.Type, _ reflect.StructTag, s *openapi3.Schema) error {
		if done, err := resolveConcrete(value, name, s); done || err != nil {
			return err
		}

		target, fields := typeRules(t)
		if target == nil {
			return describeValueRules(t, name, s)
		}
		structVal := deref(target)

		fields = expandFields(context.Background(), target, fields)

		pruneSkipped(structVal, s)

		if err := bindFieldTags(fields, structVal); err != nil {
			return err
		}

		return describeFields(fields, s)
	}
}

// resolveConcrete handles interface-typed struct fields. openapi3gen sees
// only the static type `any`, so when the field holds a concrete value we
// regenerate its schema from that value instead. Reports whether the schema
// was replaced.
func resolveConcrete(value any, name string, s *openapi3.Schema) (bool, error) {
	if value == nil || deref(value).Kind() != reflect.Struct {
		return false, nil
	}
	fv := deref(value).FieldByName(exportedName(name))
	if !fv.IsValid() || fv.Kind() != reflect.Interface {
		return false, nil
	}
	elem := fv.Elem()
	if !elem.IsValid() || elem.Kind() == reflect.Interface {
		return false, nil
	}

	g := openapi3gen.NewGenerator(openapi3gen.SchemaCustomizer(ruleCustomizer(nil)))
	ref, err := g.NewSchemaRefForValue(elem.Interface(), nil)
	if err != nil {
		return false, err
	}
	*s = *ref.Value
	return true, nil
}

// typeRules instantiates t and returns the instance with its validation
// rules. Ruler wins over ContextRuler when a type implements both.
func typeRules(t reflect.Type) (any, []*FieldRules) {
	switch r := reflect.New(t).Interface().(type) {
	case Ruler:
		return r, r.Rules()
	case ContextRuler:
		return r, r.Rules(context.Background())
	}
	return nil, nil
}

// pruneSkipped drops schema properties for fields tagged docs:"skip",
// following embedded structs.
func pruneSkipped(structVal reflect.Value, s *openapi3.Schema) {
	for i := range structVal.NumField() {
		sf := structVal.Type().Field(i)
		if sf.Anonymous {
			inner := structVal.Field(i)
			if sf.Type.Kind() == reflect.Ptr {
				inner = inner.Elem()
			}
			if inner.Kind() == reflect.Struct {
				pruneSkipped(inner, s)
			}
			continue
		}
		if strings.Split(sf.Tag.Get("docs"), ",")[0] == "skip" {
			delete(s.Properties, jsonName(sf))
		}
	}
}

// bindFieldTags resolves each FieldRules target pointer to its json tag
// name so rules can be matched against schema properties.
func bindFieldTags(fields []*FieldRules, structVal reflect.Value) error {
	for i, fr := range fields {
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			return fmt.Errorf("rule target for field index %d must be a pointer, got %s", i, fv.Kind())
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			return fmt.Errorf("rule target for field index %d not found in struct %s", i, structVal.Type())
		}
		if sf.Anonymous {
			// Embedded Rulers are expanded separately; no property of their own.
			fields[i].tag = ""
			continue
		}
		fields[i].tag = jsonName(*sf)
	}
	return nil
}

// describeFields runs every rule's Describe against the schema property it
// is bound to.
func describeFields(fields []*FieldRules, s *openapi3.Schema) error {
	for _, f := range fields {
		if f.tag == "" {
			continue
		}
		propRef, ok := s.Properties[f.tag]
		if !ok {
			continue
		}
		for _, rule := range f.rules {
			if err := rule.Describe(f.tag, s, propRef); err != nil {
				return err
			}
		}
	}
	return nil
}

// describeValueRules applies ValueRules to the schema of a non-struct type,
// e.g. a named string type whose values are constrained to an enum.
func describeValueRules(t reflect.Type, name string, s *openapi3.Schema) error {
	vr, ok := reflect.New(t).Interface().(ValueRuler)
	if !ok {
		return nil
	}
	ref := &openapi3.SchemaRef{Value: s}
	for _, rule := range vr.ValueRules() {
		if err := rule.Describe(name, s, ref); err != nil {
			return err
		}
	}
	return nil
}

func jsonName(sf reflect.StructField) string {
	return strings.Split(sf.Tag.Get("json"), ",")[0]
}

func deref(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		rv = reflect.Indirect(rv)
	}
	return rv
}

// exportedName uppercases the first byte, mapping a json name like "name"
// back to the Go field "Name".
func exportedName(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
