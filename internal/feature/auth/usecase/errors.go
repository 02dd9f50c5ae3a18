// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

// Sentinel errors returned by the auth usecase. The HTTP layer maps each of
// these to a status code and error body; none of them are retried internally.
var (
	// ErrEmailAlreadyExists is returned when registering an email that
	// already has an account.
	ErrEmailAlreadyExists = errors.New("email id already exists")

	// ErrUserNotFound is returned when no account exists for the given email.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword is returned when the password does not match the
	// stored hash. Kept distinct from ErrUserNotFound; the handler decides
	// how much to reveal to the client.
	ErrWrongPassword = errors.New("wrong password")

	// ErrStoreUnavailable is returned when the credential store cannot be
	// reached or fails for reasons other than a missing or duplicate record.
	ErrStoreUnavailable = errors.New("credential store unavailable")
)
