package models

import "unicode/utf8"

// Caller is the identity resolved for an authenticated request.
// ID is the stable owner identifier; Email is informational and may be empty.
type Caller struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Upper bounds, in characters, of the identity stored with vault records.
const (
	MaxCallerIDLength    = 255
	MaxCallerEmailLength = 320
)

// ExceedsLimits reports whether the id or email is longer than a vault record
// can store.
func (c Caller) ExceedsLimits() bool {
	return utf8.RuneCountInString(c.ID) > MaxCallerIDLength ||
		utf8.RuneCountInString(c.Email) > MaxCallerEmailLength
}

// Authenticated reports whether the caller carries an owner identifier.
func (c Caller) Authenticated() bool {
	return c.ID != ""
}

// Credentials are the raw identity claims extracted from a request. Which of
// them is consulted depends on the configured auth mode.
type Credentials struct {
	BearerToken   string
	PrincipalID   string
	PrincipalName string
}
