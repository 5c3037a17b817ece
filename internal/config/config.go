package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/expedition-rewards/internal/logger"
)

// Config holds all configuration for the application
type Config struct {
	Catalog CatalogConfig
	Redis   RedisConfig
	Rewards RewardsConfig
	Log     logger.Config
}

// CatalogConfig holds where the static tables come from
type CatalogConfig struct {
	Path string `env:"CATALOG_PATH"` // Optional: embedded default catalog if empty
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL"` // Optional: catalogs are not stored in redis if empty
}

// RewardsConfig tunes the reward engines
type RewardsConfig struct {
	SynergySoftCap float64 `env:"SYNERGY_SOFT_CAP" envDefault:"60"`
	RollSeed       uint64  `env:"ROLL_SEED"` // 0 means unseeded
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Rewards.SynergySoftCap <= 0 {
		return nil, fmt.Errorf("SYNERGY_SOFT_CAP must be positive, got %v", cfg.Rewards.SynergySoftCap)
	}

	return cfg, nil
}
