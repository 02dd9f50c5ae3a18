// Package dto defines data transfer objects for the gifts feature's HTTP transport layer.
package dto

import "giftlink_backend/internal/feature/gifts/domain/entity"

// GiftItem is the listing representation returned to clients.
type GiftItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Condition   string  `json:"condition"`
	AgeYears    float64 `json:"ageYears"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	PostedBy    uint    `json:"postedBy"`
	DateAdded   int64   `json:"dateAdded"`
}

// FromEntity converts a domain gift into its wire representation.
func FromEntity(g *entity.Gift) GiftItem {
	return GiftItem{
		ID:          g.ID,
		Name:        g.Name,
		Category:    g.Category,
		Condition:   g.Condition,
		AgeYears:    g.AgeYears,
		Description: g.Description,
		ImageURL:    g.ImageURL,
		PostedBy:    g.PostedBy,
		DateAdded:   g.CreatedAt.Unix(),
	}
}

// CreateGiftReq represents the request body for posting a new gift.
type CreateGiftReq struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Condition   string  `json:"condition"`
	AgeYears    float64 `json:"ageYears"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}
