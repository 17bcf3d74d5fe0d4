package models

// Envelope wraps every /api response body.
//
// Exactly one of Data and Error is meaningful: Data on success, Error on
// failure. Both are omitted from JSON when empty.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
