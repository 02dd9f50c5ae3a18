package usecase

import (
	"context"

	"giftlink_backend/internal/feature/gifts/domain/entity"
)

// SearchQuery narrows a gift search. Zero values mean "no filter".
type SearchQuery struct {
	// Name matches listings whose name contains the given substring.
	Name string
	// Category and Condition match exactly.
	Category  string
	Condition string
	// MaxAgeYears keeps only items at most this old. Zero disables the filter.
	MaxAgeYears float64
}

// GiftRepository abstracts the persistence layer for gift listings.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type GiftRepository interface {
	// List returns all gifts, newest first.
	List(ctx context.Context) ([]entity.Gift, error)

	// FindByID returns the gift with the given ID, or ErrGiftNotFound.
	FindByID(ctx context.Context, id uint) (*entity.Gift, error)

	// Search returns the gifts matching the query, newest first.
	Search(ctx context.Context, q SearchQuery) ([]entity.Gift, error)

	// Create persists a new gift and assigns its ID and CreatedAt.
	Create(ctx context.Context, gift *entity.Gift) error
}

// GiftUsecase provides business logic for gift listing operations.
type GiftUsecase struct {
	repo GiftRepository
}

// NewGiftUsecase creates a new GiftUsecase with the given repository.
func NewGiftUsecase(r GiftRepository) *GiftUsecase {
	return &GiftUsecase{repo: r}
}

// ListGifts returns all gift listings.
func (u *GiftUsecase) ListGifts(ctx context.Context) ([]entity.Gift, error) {
	return u.repo.List(ctx)
}

// GetGift returns a single gift by ID.
func (u *GiftUsecase) GetGift(ctx context.Context, id uint) (*entity.Gift, error) {
	return u.repo.FindByID(ctx, id)
}

// SearchGifts returns the gifts matching the query.
func (u *GiftUsecase) SearchGifts(ctx context.Context, q SearchQuery) ([]entity.Gift, error) {
	return u.repo.Search(ctx, q)
}

// PostGift creates a new listing on behalf of the given user.
func (u *GiftUsecase) PostGift(ctx context.Context, gift *entity.Gift, postedBy uint) (*entity.Gift, error) {
	gift.PostedBy = postedBy
	if err := u.repo.Create(ctx, gift); err != nil {
		return nil, err
	}
	return gift, nil
}
