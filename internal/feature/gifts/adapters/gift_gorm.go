// Package adapters provides the repository implementations for the gifts feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"giftlink_backend/internal/feature/gifts/domain/entity"
	"giftlink_backend/internal/feature/gifts/usecase"
)

// giftGorm is the GORM implementation of the GiftRepository interface.
type giftGorm struct {
	db *gorm.DB
}

// Compile-time check that giftGorm implements usecase.GiftRepository.
var _ usecase.GiftRepository = (*giftGorm)(nil)

// NewGiftGorm creates a new giftGorm backed by the given gorm.DB connection.
func NewGiftGorm(db *gorm.DB) *giftGorm {
	return &giftGorm{db: db}
}

// List returns all gifts, newest first.
func (r *giftGorm) List(ctx context.Context) ([]entity.Gift, error) {
	var gifts []entity.Gift
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

// FindByID returns the gift with the given ID.
// It returns usecase.ErrGiftNotFound when the gift does not exist.
func (r *giftGorm) FindByID(ctx context.Context, id uint) (*entity.Gift, error) {
	var g entity.Gift
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrGiftNotFound
		}
		return nil, err
	}
	return &g, nil
}

// Search returns the gifts matching the query, newest first.
// Empty query fields add no WHERE clause.
func (r *giftGorm) Search(ctx context.Context, q usecase.SearchQuery) ([]entity.Gift, error) {
	tx := r.db.WithContext(ctx).Model(&entity.Gift{})
	if q.Name != "" {
		tx = tx.Where("name LIKE ?", "%"+q.Name+"%")
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Condition != "" {
		tx = tx.Where("condition = ?", q.Condition)
	}
	if q.MaxAgeYears > 0 {
		tx = tx.Where("age_years <= ?", q.MaxAgeYears)
	}

	var gifts []entity.Gift
	if err := tx.Order("created_at DESC").Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

// Create inserts the gift and assigns its ID and CreatedAt.
func (r *giftGorm) Create(ctx context.Context, gift *entity.Gift) error {
	return r.db.WithContext(ctx).Create(gift).Error
}
