package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Storage StorageConfig
	Catalog CatalogConfig
	Auth    AuthConfig
	Locale  LocaleConfig
}

type StorageConfig struct {
	// Backend selects the key-value backing: sqlite, redis or memory.
	Backend       string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	Path          string `env:"STORAGE_PATH" envDefault:"shop.db"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

type CatalogConfig struct {
	BaseURL string        `env:"CATALOG_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"10s"`
}

type AuthConfig struct {
	AdminUsername string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string        `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	AdminEmail    string        `env:"ADMIN_EMAIL" envDefault:"admin@eshop.com"`
	TokenSecret   string        `env:"TOKEN_SECRET" envDefault:"super-secret-key"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
}

type LocaleConfig struct {
	Default string `env:"DEFAULT_LOCALE" envDefault:"th"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
