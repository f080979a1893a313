package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Role is the kind of account a token was issued to.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleScanner Role = "scanner"
)

// Claims is the JWT claim set of go-waste-tracker tokens: the registered
// claims plus the account role. The subject is the account ID.
type Claims struct {
	jwt.RegisteredClaims

	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// SubjectID is the account ID taken from the "sub" claim.
	SubjectID string `json:"-"`

	// Role is the account role taken from the "role" claim.
	Role Role `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
