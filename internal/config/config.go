package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	HTTPPort    string        `env:"HTTP_PORT" env-default:"8080"`
	DatabaseDSN string        `env:"DATABASE_DSN" env-default:"host=localhost user=postgres password=postgres dbname=zimlicense port=5432 sslmode=disable"`
	JWTSecret   string        `env:"JWT_SECRET"`
	CORSOrigins string        `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" env-default:"24h"`
	BcryptCost  int           `env:"BCRYPT_COST" env-default:"10"`
}

func Load() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("[FATAL] failed to read environment: %v", err)
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		log.Fatalf("[FATAL] BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return &cfg
}
