// Package usecase implements the business logic for the gifts feature.
package usecase

import "errors"

// ErrGiftNotFound is returned when no gift exists for the given ID.
var ErrGiftNotFound = errors.New("gift not found")
