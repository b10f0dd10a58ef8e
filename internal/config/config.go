// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs, loaded from environment
// variables (a .env file is honored in development).
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	JWTSecret   string `env:"JWT_SECRET,required"`

	// Bootstrap admin, created on first start if missing. This account
	// is protected from deletion.
	FirstAdminEmail    string `env:"FIRST_ADMIN_EMAIL" envDefault:"admin@serenityplace.org"`
	FirstAdminPassword string `env:"FIRST_ADMIN_PASSWORD" envDefault:"admin123"`
	FirstAdminName     string `env:"FIRST_ADMIN_NAME" envDefault:"System Administrator"`

	// S3-compatible image storage. When Bucket is empty the gallery
	// runs in placeholder mode and never contacts a remote store.
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3Region    string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3PublicURL string `env:"S3_PUBLIC_URL"`

	// Served to clients when an image upload fails or storage is disabled.
	PlaceholderImageURL string `env:"PLACEHOLDER_IMAGE_URL" envDefault:"/images/placeholder.jpg"`
}

// IsDevelopment reports whether the app runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// S3Enabled reports whether remote image storage is configured.
func (c Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// Load reads .env (if present) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if len(cfg.JWTSecret) < 16 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 16 bytes, got %d", len(cfg.JWTSecret))
	}
	return cfg, nil
}
