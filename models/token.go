package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set accepted by the bearer-token AuthGate.
// The "sub" claim carries the owner identifier.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email,omitempty"`
}

// Token wraps a JWT with the values the server cares about after parsing.
//
// SignedString is the compact JWS form (header.payload.signature) suitable for
// an Authorization header. Caller is populated from the "sub" and "email"
// claims after successful validation.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`
	Caller       Caller `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
