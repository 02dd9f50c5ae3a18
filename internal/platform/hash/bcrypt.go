// Package hash provides the bcrypt implementation of password hashing.
package hash

import (
	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes and verifies passwords with a fixed work factor.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a Bcrypt hasher with the given work factor.
// Costs outside bcrypt's supported range fall back to the library default (10).
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns a salted bcrypt hash of password. The salt is generated per
// call, so hashing the same password twice yields different outputs.
func (b *Bcrypt) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether hashed was produced from password.
func (b *Bcrypt) Verify(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
