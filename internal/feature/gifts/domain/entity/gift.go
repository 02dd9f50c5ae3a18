// Package entity defines the domain entities for the gifts feature.
package entity

import "time"

// Gift represents a single listed item on the GiftLink marketplace.
type Gift struct {
	// ID is the unique identifier for the gift, assigned by the store.
	ID uint `gorm:"primaryKey"`

	// Name is the short title shown in listings.
	Name string `gorm:"size:255;not null"`

	// Category groups gifts for browsing and search (e.g. "Furniture").
	Category string `gorm:"size:100;index"`

	// Condition describes the item's state (e.g. "New", "Like New", "Older").
	Condition string `gorm:"size:50"`

	// AgeYears is the approximate age of the item in years.
	AgeYears float64

	// Description is the free-form listing text.
	Description string

	// ImageURL points at the listing photo.
	ImageURL string `gorm:"size:512"`

	// PostedBy is the ID of the user who listed the gift.
	PostedBy uint `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
