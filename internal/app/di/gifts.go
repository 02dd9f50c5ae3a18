// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"giftlink_backend/internal/app/config"
	giftadapters "giftlink_backend/internal/feature/gifts/adapters"
	"giftlink_backend/internal/feature/gifts/usecase"
	"giftlink_backend/internal/platform/cache"
)

// NewGiftRepository creates a GiftRepository implementation.
// If Redis is available, the GORM repository is wrapped in a caching
// decorator; otherwise reads go straight to the database.
func NewGiftRepository(rdb *redis.Client, db *gorm.DB, cfg *config.Config) usecase.GiftRepository {
	repo := giftadapters.NewGiftGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingGiftRepository(rdb, cfg.GiftCacheTTL, repo, "gifts")
}
