package reqgate

import (
	"encoding/json"
	"net/http"
)

// ErrorCodeBadRequest is the fixed errorCode carried by the rejection envelope.
const ErrorCodeBadRequest = "bad_request"

// SectionError pairs a failing section with the engine's violations for it.
type SectionError struct {
	Section Section    `json:"type"`
	Errors  Violations `json:"errors"`
}

// ErrorEnvelope is the JSON document written for rejected requests.
// Meta holds exactly the failing sections, ordered params, query, body.
type ErrorEnvelope struct {
	Success   bool           `json:"success"`
	ErrorCode string         `json:"errorCode"`
	Meta      []SectionError `json:"meta"`
}

// NewErrorEnvelope builds the rejection envelope for the given failures.
func NewErrorEnvelope(failures []SectionError) ErrorEnvelope {
	return ErrorEnvelope{
		Success:   false,
		ErrorCode: ErrorCodeBadRequest,
		Meta:      failures,
	}
}

// WriteEnvelope writes the 400 rejection envelope. It is the default
// ErrorHandler; install a custom one with [WithErrorHandler].
func WriteEnvelope(w http.ResponseWriter, failures []SectionError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(NewErrorEnvelope(failures))
}
