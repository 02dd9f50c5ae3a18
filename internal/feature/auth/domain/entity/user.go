// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered GiftLink account.
// It contains authentication credentials and profile metadata.
type User struct {
	// ID is the unique identifier for the user, assigned by the store.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// Uniqueness is enforced by the database index, not by an
	// application-level pre-check, so concurrent registrations for the
	// same address cannot both succeed.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// FirstName and LastName are the user's display names.
	// FirstName is the only profile field the update flow mutates.
	FirstName string `gorm:"size:255"`
	LastName  string `gorm:"size:255"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This must never store plaintext passwords.
	PasswordHash string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
