package reqgate

// Section identifies one of the three validatable parts of an HTTP request.
// The string value is what appears in the error envelope's "type" field.
type Section string

const (
	// Params is the route-parameter section (e.g. /orders/{id}).
	Params Section = "Params"
	// Query is the URL query-string section.
	Query Section = "Query"
	// Body is the JSON request-body section.
	Body Section = "Body"
)

// sectionOrder is the fixed evaluation and reporting order.
var sectionOrder = [3]Section{Params, Query, Body}

func (s Section) String() string { return string(s) }
