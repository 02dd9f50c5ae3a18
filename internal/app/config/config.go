// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters. The token signing secret
// and every connection parameter are injected from here; no package reads the
// environment on its own.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// JWTSecret signs session tokens. An empty value is a fatal
	// configuration error, checked by NewConfig.
	JWTSecret string `env:"JWT_SECRET,notEmpty"`

	// BcryptCost is the password hashing work factor.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER" envDefault:"giftlink"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME" envDefault:"giftlink"`
	RunMigrations bool   `env:"RUN_MIGRATIONS" envDefault:"false"`

	// Redis is optional: an empty host runs the service without caching.
	RedisHost     string        `env:"REDIS_HOST"`
	RedisPort     string        `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	GiftCacheTTL  time.Duration `env:"GIFT_CACHE_TTL" envDefault:"5m"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
