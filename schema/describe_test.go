package schema

import (
	"regexp"
	"testing"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSchemaRef() (*openapi3.Schema, *openapi3.SchemaRef) {
	return openapi3.NewSchema(), &openapi3.SchemaRef{Value: openapi3.NewSchema()}
}

func newStringSchemaRef() (*openapi3.Schema, *openapi3.SchemaRef) {
	return openapi3.NewSchema(), &openapi3.SchemaRef{
		Value: &openapi3.Schema{Type: &openapi3.Types{"string"}},
	}
}

// Rules whose only schema effect is text in the description.
func TestDescribe_DescriptionRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want string
	}{
		{"Describe", Describe("a helpful description"), "a helpful description"},
		{"Custom", Custom(func(_ any) error { return nil }, "must be special"), "must be special"},
		{"By", By(func(_ any) error { return nil }, "custom inline rule"), "custom inline rule"},
		{"Skip", Skip("not applicable"), "not applicable"},
		{"Nil", Nil, "null"},
		{"Empty", Empty, "empty"},
		{"NotIn", NotIn("root", "admin"), "not one of 'root', 'admin'"},
		{"KeyIn", KeyIn("a", "b", "c"), "keys must be in (a,b,c)"},
		{"HasAlphabetic", HasAlphabetic(), "Must contain at least one alphabetic character."},
		{"NonCreditCardNumber", NonCreditCardNumber(), "Must contain at least one alphabetic character."},
		{"StringRule", NewStringRule(func(s string) bool { return s != "" }, "must not be blank"), "must not be blank"},
		{"StringRuleDecimalMax", NewStringRuleDecimalMax(2), "no more than 2 decimals"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, ref := newSchemaRef()

			err := tt.rule.Describe("field", schema, ref)
			require.NoError(t, err)

			assert.Contains(t, ref.Value.Description, tt.want)
		})
	}
}

// Description text accumulates with a space between rules.
func TestDescribe_DescriptionAppends(t *testing.T) {
	schema, ref := newSchemaRef()
	ref.Value.Description = "existing"

	require.NoError(t, Nil.Describe("field", schema, ref))
	assert.Equal(t, "existing null", ref.Value.Description)

	require.NoError(t, Describe("suffix").Describe("field", schema, ref))
	assert.Equal(t, "existing null suffix", ref.Value.Description)
}

func TestDescribe_Required(t *testing.T) {
	schema, ref := newSchemaRef()

	require.NoError(t, Required.Describe("name", schema, ref))
	require.NoError(t, Required.Describe("email", schema, ref))

	// Required lands on the parent schema, not the field ref.
	assert.Equal(t, []string{"name", "email"}, schema.Required)
	assert.Empty(t, ref.Value.Description)
}

func TestDescribe_MinMax(t *testing.T) {
	schema, ref := newSchemaRef()

	require.NoError(t, Min(5).Describe("age", schema, ref))
	require.NoError(t, Max(100).Describe("age", schema, ref))

	require.NotNil(t, ref.Value.Min)
	require.NotNil(t, ref.Value.Max)
	assert.Equal(t, float64(5), *ref.Value.Min)
	assert.Equal(t, float64(100), *ref.Value.Max)
}

func TestDescribe_MinMax_StringType(t *testing.T) {
	// On a string-typed ref the threshold's Go type becomes the format.
	schema, ref := newStringSchemaRef()

	require.NoError(t, Min(0.0).Describe("amount", schema, ref))

	assert.Equal(t, "float64", ref.Value.Format)
	require.NotNil(t, ref.Value.Min)
	assert.Equal(t, float64(0), *ref.Value.Min)
}

func TestDescribe_Length(t *testing.T) {
	schema, ref := newSchemaRef()

	require.NoError(t, Length(3, 255).Describe("title", schema, ref))

	require.NotNil(t, ref.Value.Min)
	require.NotNil(t, ref.Value.Max)
	assert.Equal(t, float64(3), *ref.Value.Min)
	assert.Equal(t, float64(255), *ref.Value.Max)
}

func TestDescribe_In(t *testing.T) {
	schema, ref := newSchemaRef()

	require.NoError(t, In("a", "b", "c").Describe("status", schema, ref))

	assert.Equal(t, []any{"a", "b", "c"}, ref.Value.Enum)
}

func TestDescribe_Match(t *testing.T) {
	schema, ref := newSchemaRef()

	re := regexp.MustCompile(`^[a-z0-9-]+$`)
	require.NoError(t, Match(re).Describe("slug", schema, ref))

	assert.Equal(t, `^[a-z0-9-]+$`, ref.Value.Pattern)
}

func TestDescribe_Each(t *testing.T) {
	schema, ref := newSchemaRef()

	// Each forwards every inner rule's schema effect.
	require.NoError(t, Each(Required, In("x", "y")).Describe("tags", schema, ref))

	assert.Contains(t, schema.Required, "tags")
	assert.Equal(t, []any{"x", "y"}, ref.Value.Enum)
}

func TestDescribe_Unique(t *testing.T) {
	schema, ref := newSchemaRef()

	require.NoError(t, Unique(func(i int) any { return i }, "unique items").Describe("items", schema, ref))

	assert.True(t, ref.Value.UniqueItems)
}

func TestDescribe_Date(t *testing.T) {
	schema, ref := newSchemaRef()

	require.NoError(t, Date("2006-01-02").Describe("dob", schema, ref))

	assert.Equal(t, "2006-01-02", ref.Value.Format)
	assert.Empty(t, ref.Value.Description)
}

func TestDescribe_Date_WithRange(t *testing.T) {
	schema, ref := newSchemaRef()

	lo := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)

	require.NoError(t, Date("2006-01-02").Min(lo).Max(hi).Describe("eventDate", schema, ref))

	assert.Equal(t, "2006-01-02", ref.Value.Format)
	assert.Contains(t, ref.Value.Description, "> "+lo.String())
	assert.Contains(t, ref.Value.Description, "< "+hi.String())
}

func TestDescribe_When(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want string
	}{
		{"required branch", When(true, "is admin", Required), "when is admin: required"},
		{"with else", When(true, "is admin", Required).Else(In("guest", "viewer")), "when is admin: required else: one of [guest, viewer]"},
		{"nil branch", When(true, "line type not 1", Nil), "when line type not 1: null"},
		{"min branch", When(true, "positive", Min(0.0)), "when positive: min 0"},
		{"no condition desc", When(true, "", Max(0.0)), "max 0"},
		{"multiple inner rules", When(true, "active", Required, Min(1.0)), "when active: required, min 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, ref := newSchemaRef()

			err := tt.rule.Describe("field", schema, ref)
			require.NoError(t, err)

			assert.Equal(t, tt.want, ref.Value.Description)
		})
	}
}

func TestDescribe_Default(t *testing.T) {
	schema, ref := newSchemaRef()

	require.NoError(t, Default(42).Describe("count", schema, ref))

	assert.Equal(t, 42, ref.Value.Default)
}

func TestDescribe_Example(t *testing.T) {
	schema, ref := newSchemaRef()

	require.NoError(t, Example("sample@email.com").Describe("email", schema, ref))

	assert.Equal(t, "sample@email.com", ref.Value.Example)
}

func TestDescribe_Deprecate(t *testing.T) {
	schema, ref := newSchemaRef()

	require.NoError(t, Deprecate().Describe("oldField", schema, ref))

	assert.True(t, ref.Value.Deprecated)
}

func TestDescribe_NotNil(t *testing.T) {
	schema, ref := newSchemaRef()

	require.NoError(t, NotNil.Describe("ptr", schema, ref))

	assert.False(t, ref.Value.Nullable)
}
