package is_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/reqgate/is"
	"github.com/Gobd/reqgate/schema"
)

func TestRules(t *testing.T) {
	tests := []struct {
		name string
		rule schema.Rule
		ok   []string
		bad  []string
	}{
		{"Email", is.Email, []string{"a@b.co", "first.last@example.com"}, []string{"not-an-email", "@missing.local"}},
		{"UUID", is.UUID, []string{"a987fbc9-4bed-3078-cf07-9141ba07c9f3"}, []string{"934859"}},
		{"UUIDv4", is.UUIDv4, []string{"57b73598-8764-4ad0-a76a-679bb6640eb1"}, []string{"a987fbc9-4bed-3078-cf07-9141ba07c9f3"}},
		{"URL", is.URL, []string{"https://example.com/path?q=1"}, []string{"://missing.scheme"}},
		{"Host", is.Host, []string{"example.com", "10.0.0.1"}, []string{"exa mple.com"}},
		{"IP", is.IP, []string{"127.0.0.1", "::1"}, []string{"256.0.0.1"}},
		{"IPv4", is.IPv4, []string{"10.0.0.1"}, []string{"::1"}},
		{"IPv6", is.IPv6, []string{"2001:db8::1"}, []string{"10.0.0.1"}},
		{"Port", is.Port, []string{"1", "8080", "65535"}, []string{"0", "65536", "http"}},
		{"Alpha", is.Alpha, []string{"abc"}, []string{"abc1"}},
		{"Alphanumeric", is.Alphanumeric, []string{"abc123"}, []string{"abc-123"}},
		{"Numeric", is.Numeric, []string{"01234"}, []string{"12.3", "abc"}},
		{"ASCII", is.ASCII, []string{"plain text"}, []string{"naïve"}},
		{"Base64", is.Base64, []string{"aGVsbG8="}, []string{"####"}},
		{"JSON", is.JSON, []string{`{"a":1}`, `[1,2]`}, []string{`{"a":}`}},
		{"Semver", is.Semver, []string{"1.2.3", "1.0.0-beta.1"}, []string{"1.2", "v1..0"}},
		{"E164", is.E164, []string{"+14155552671"}, []string{"555-2671"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, in := range tt.ok {
				assert.NoError(t, tt.rule.Validate(in), "value %q", in)
			}
			for _, in := range tt.bad {
				assert.Error(t, tt.rule.Validate(in), "value %q", in)
			}
		})
	}
}

func TestRules_EmptySkipped(t *testing.T) {
	for _, r := range []schema.Rule{is.Email, is.UUID, is.URL, is.IP, is.Port, is.Semver} {
		assert.NoError(t, r.Validate(""))
	}
}

func TestRules_NonStringRejected(t *testing.T) {
	err := is.Email.Validate(42)
	assert.Error(t, err)
}

func TestDescribe_SetsFormat(t *testing.T) {
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}

	err := is.Email.Describe("email", openapi3.NewSchema(), ref)
	require.NoError(t, err)
	assert.Equal(t, "email", ref.Value.Format)

	err = is.UUID.Describe("id", openapi3.NewSchema(), ref)
	require.NoError(t, err)
	assert.Equal(t, "uuid", ref.Value.Format)
}

// --- In struct rules ---

type contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	Site  string `json:"site"`
}

func (c *contact) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&c.Email, schema.Required, is.Email),
		schema.Field(&c.Phone, is.E164),
		schema.Field(&c.Site, is.URL),
	}
}

func TestRules_InStruct(t *testing.T) {
	ok := contact{Email: "a@b.co", Phone: "+14155552671", Site: "https://example.com"}
	assert.NoError(t, schema.Validate(&ok))

	bad := contact{Email: "nope", Phone: "555"}
	err := schema.Validate(&bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.Contains(t, err.Error(), "phone")
}
