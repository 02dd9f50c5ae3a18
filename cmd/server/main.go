package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"giftlink_backend/internal/app/config"
	"giftlink_backend/internal/app/di"
	"giftlink_backend/internal/app/router"
	authadapters "giftlink_backend/internal/feature/auth/adapters"
	authhandler "giftlink_backend/internal/feature/auth/transport/handler"
	authusecase "giftlink_backend/internal/feature/auth/usecase"
	gifthandler "giftlink_backend/internal/feature/gifts/transport/handler"
	giftusecase "giftlink_backend/internal/feature/gifts/usecase"
	infradb "giftlink_backend/internal/platform/db"
	"giftlink_backend/internal/platform/hash"
	jwtmw "giftlink_backend/internal/platform/jwt"
	infraredis "giftlink_backend/internal/platform/redis"
)

func main() {
	// Config (fatal when JWT_SECRET is missing)
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// DB
	db := infradb.OpenDB(cfg)

	// Redis (optional)
	var rdb *redisv9.Client
	if cfg.RedisHost == "" {
		log.Println("[WARN] REDIS_HOST not set. Running without cache.")
	} else if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Platform collaborators
	hasher := hash.NewBcrypt(cfg.BcryptCost)
	issuer := jwtmw.NewIssuer(cfg.JWTSecret)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	giftRepo := di.NewGiftRepository(rdb, db, cfg)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, issuer)
	giftUC := giftusecase.NewGiftUsecase(giftRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	giftH := gifthandler.NewGiftHandler(giftUC)

	r := router.NewRouter(authH, giftH, issuer)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
