package schema_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gobd/reqgate/schema"
)

func genSchema(t *testing.T, value any) *openapi3.Schema {
	t.Helper()
	ref, err := schema.NewSchemaRefForValue(value)
	require.NoError(t, err)
	require.NotNil(t, ref)
	require.NotNil(t, ref.Value)
	return ref.Value
}

type shipmentDraft struct {
	Reference string  `json:"reference"`
	WeightKg  float64 `json:"weight_kg"`
	Insured   bool    `json:"insured"`
}

func (s *shipmentDraft) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&s.Reference, schema.Required, schema.Length(3, 64)),
		schema.Field(&s.WeightKg, schema.Min(0.1), schema.Max(2000.0)),
		schema.Field(&s.Insured),
	}
}

func TestSchemaRef_RequiredAndBounds(t *testing.T) {
	s := genSchema(t, shipmentDraft{})

	assert.Contains(t, s.Required, "reference")
	assert.NotContains(t, s.Required, "weight_kg")

	assert.Contains(t, s.Properties, "reference")
	assert.Contains(t, s.Properties, "weight_kg")
	assert.Contains(t, s.Properties, "insured")

	weight := s.Properties["weight_kg"]
	require.NotNil(t, weight.Value)
	require.NotNil(t, weight.Value.Min)
	require.NotNil(t, weight.Value.Max)
	assert.Equal(t, 0.1, *weight.Value.Min)
	assert.Equal(t, 2000.0, *weight.Value.Max)

	// Length translates to min/max on the string property.
	ref := s.Properties["reference"]
	require.NotNil(t, ref.Value)
	require.NotNil(t, ref.Value.Min)
	require.NotNil(t, ref.Value.Max)
	assert.Equal(t, float64(3), *ref.Value.Min)
	assert.Equal(t, float64(64), *ref.Value.Max)
}

type labelRequest struct {
	Format string `json:"format"`
}

func (l *labelRequest) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&l.Format, schema.Required, schema.In("pdf", "zpl", "png")),
	}
}

func TestSchemaRef_Enum(t *testing.T) {
	s := genSchema(t, labelRequest{})

	format := s.Properties["format"]
	require.NotNil(t, format.Value)
	assert.Equal(t, []any{"pdf", "zpl", "png"}, format.Value.Enum)
	assert.Contains(t, s.Required, "format")
}

type customsNote struct {
	Text string `json:"text"`
}

func (c *customsNote) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&c.Text, schema.Describe("free-text customs declaration")),
	}
}

func TestSchemaRef_Description(t *testing.T) {
	s := genSchema(t, customsNote{})

	text := s.Properties["text"]
	require.NotNil(t, text.Value)
	assert.Equal(t, "free-text customs declaration", text.Value.Description)
}

type auditStamp struct {
	RequestID string `json:"request_id"`
}

func (a *auditStamp) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&a.RequestID, schema.Required),
	}
}

type trackedShipment struct {
	auditStamp
	Status string `json:"status"`
}

func (s *trackedShipment) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&s.auditStamp),
		schema.Field(&s.Status, schema.Required),
	}
}

// Embedded Ruler fields flatten into the parent schema, rules included.
func TestSchemaRef_EmbeddedRuler(t *testing.T) {
	s := genSchema(t, trackedShipment{})

	assert.Contains(t, s.Properties, "request_id")
	assert.Contains(t, s.Properties, "status")
	assert.Contains(t, s.Required, "request_id")
	assert.Contains(t, s.Required, "status")
}

type shipmentRecord struct {
	TrackingNumber string `json:"tracking_number"`
	InternalRef    string `json:"internal_ref" docs:"skip"`
	Carrier        string `json:"carrier"`
}

func (s *shipmentRecord) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&s.TrackingNumber, schema.Required),
		schema.Field(&s.Carrier),
	}
}

func TestSchemaRef_DocsSkip(t *testing.T) {
	s := genSchema(t, shipmentRecord{})

	assert.NotContains(t, s.Properties, "internal_ref")
	assert.Contains(t, s.Properties, "tracking_number")
	assert.Contains(t, s.Properties, "carrier")
}

type addressInput struct {
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

func (a *addressInput) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&a.City, schema.Required),
		schema.Field(&a.PostalCode, schema.Required),
	}
}

type webhookPayload struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func (w *webhookPayload) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&w.Event, schema.Required),
	}
}

func TestSchemaRef_NilInterfaceField(t *testing.T) {
	// A zero value carries no concrete type for data, so the generic
	// openapi3gen output stands.
	s := genSchema(t, webhookPayload{})
	assert.NotNil(t, s)
	assert.Contains(t, s.Required, "event")
}

func TestSchemaRef_ConcreteInterfaceField(t *testing.T) {
	s := genSchema(t, webhookPayload{Data: addressInput{}})

	data := s.Properties["data"]
	require.NotNil(t, data)
	require.NotNil(t, data.Value)
	assert.Contains(t, data.Value.Properties, "city")
	assert.Contains(t, data.Value.Properties, "postal_code")
	assert.Contains(t, data.Value.Required, "city")
}

type contentLine struct {
	Description string `json:"description"`
}

func (c *contentLine) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&c.Description, schema.Required),
	}
}

type parcelInput struct {
	Barcode  string        `json:"barcode"`
	Contents []contentLine `json:"contents"`
}

func (p *parcelInput) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&p.Barcode, schema.Required, schema.Length(1, 32)),
		schema.Field(&p.Contents),
	}
}

type manifest struct {
	Parcels []parcelInput `json:"parcels"`
}

func (m *manifest) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&m.Parcels),
	}
}

func TestSchemaRef_SliceElements(t *testing.T) {
	s := genSchema(t, manifest{})

	parcels := s.Properties["parcels"]
	require.NotNil(t, parcels.Value)
	assert.Equal(t, &openapi3.Types{"array"}, parcels.Value.Type)

	items := parcels.Value.Items
	require.NotNil(t, items)
	require.NotNil(t, items.Value)
	assert.Contains(t, items.Value.Properties, "barcode")
	assert.Contains(t, items.Value.Required, "barcode")
}

func TestSchemaRef_NestedSlices(t *testing.T) {
	s := genSchema(t, manifest{})

	parcel := s.Properties["parcels"].Value.Items.Value
	require.NotNil(t, parcel)

	contents := parcel.Properties["contents"]
	require.NotNil(t, contents.Value)
	require.NotNil(t, contents.Value.Items)

	line := contents.Value.Items.Value
	require.NotNil(t, line)
	assert.Contains(t, line.Properties, "description")
	assert.Contains(t, line.Required, "description")
}

type zoneRate struct {
	BaseCents int `json:"base_cents"`
}

func (z *zoneRate) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&z.BaseCents, schema.Required, schema.Min(0)),
	}
}

type rateTable struct {
	Zones map[string]zoneRate `json:"zones"`
}

func (r *rateTable) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&r.Zones),
	}
}

func TestSchemaRef_MapValues(t *testing.T) {
	s := genSchema(t, rateTable{})

	zones := s.Properties["zones"]
	require.NotNil(t, zones.Value)

	if zones.Value.AdditionalProperties.Schema != nil {
		rate := zones.Value.AdditionalProperties.Schema.Value
		assert.Contains(t, rate.Properties, "base_cents")
		assert.Contains(t, rate.Required, "base_cents")
	}
}

type regionScoped struct {
	Region string `json:"region"`
}

func (r *regionScoped) Rules(_ context.Context) []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&r.Region, schema.Required),
	}
}

func TestSchemaRef_ContextRuler(t *testing.T) {
	s := genSchema(t, regionScoped{})

	assert.Contains(t, s.Properties, "region")
	assert.Contains(t, s.Required, "region")
}

type carrierCode string

const (
	carrierUPS   carrierCode = "ups"
	carrierFedEx carrierCode = "fedex"
	carrierDHL   carrierCode = "dhl"
)

func (carrierCode) ValueRules() []schema.Rule {
	return []schema.Rule{schema.In(carrierUPS, carrierFedEx, carrierDHL)}
}

type bookingInput struct {
	Carrier carrierCode `json:"carrier"`
}

func (b *bookingInput) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&b.Carrier, schema.Required),
	}
}

func TestSchemaRef_ValueRulerEnum(t *testing.T) {
	s := genSchema(t, bookingInput{})

	assert.Contains(t, s.Required, "carrier")

	carrier := s.Properties["carrier"]
	require.NotNil(t, carrier.Value)
	assert.Equal(t, []any{carrierUPS, carrierFedEx, carrierDHL}, carrier.Value.Enum)
}

type priorityLevel int

func (priorityLevel) ValueRules() []schema.Rule {
	return []schema.Rule{
		schema.Min(0),
		schema.Max(9),
		schema.Describe("0 is routine, 9 is urgent"),
	}
}

type dispatchInput struct {
	Priority priorityLevel `json:"priority"`
}

func (d *dispatchInput) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&d.Priority),
	}
}

func TestSchemaRef_ValueRulerBounds(t *testing.T) {
	s := genSchema(t, dispatchInput{})

	priority := s.Properties["priority"]
	require.NotNil(t, priority.Value)
	require.NotNil(t, priority.Value.Min)
	require.NotNil(t, priority.Value.Max)
	assert.Equal(t, float64(0), *priority.Value.Min)
	assert.Equal(t, float64(9), *priority.Value.Max)
	assert.Equal(t, "0 is routine, 9 is urgent", priority.Value.Description)
}

var strayField string

type misboundRules struct {
	Name string `json:"name"`
}

func (m *misboundRules) Rules() []*schema.FieldRules {
	return []*schema.FieldRules{
		schema.Field(&strayField, schema.Required),
	}
}

func TestSchemaRef_UnboundRuleTarget(t *testing.T) {
	_, err := schema.NewSchemaRefForValue(misboundRules{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in struct")
}
