// Package jwtmw provides JWT issuing, verification and the gin auth middleware.
package jwtmw

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for tampered or malformed tokens.
var ErrInvalidToken = errors.New("invalid token")

// UserClaim carries the account identifier inside the token payload.
type UserClaim struct {
	ID uint `json:"id"`
}

// Claims is the session token payload: {"user":{"id":<id>}}.
// No expiry claim is set; token validity is bounded by the signature alone.
type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a process-wide HS256 secret.
// The secret is injected at construction rather than read from the
// environment at call time.
type Issuer struct {
	secret []byte
}

// NewIssuer creates an Issuer with the provided signing secret.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Sign mints a token whose claims embed the given user ID.
func (i *Issuer) Sign(userID uint) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{User: UserClaim{ID: userID}})
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the token signature and returns the embedded claims.
// It returns ErrInvalidToken on any parse or signature failure.
func (i *Issuer) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
