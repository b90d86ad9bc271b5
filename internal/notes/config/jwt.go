package config

import "time"

// JWTConfig содержит настройки токенов доступа и хеширования паролей.
type JWTConfig struct {
	SecretKey  string        `env:"NOTES_JWT_SECRET" env-default:"change-me-in-production"`
	TokenTTL   time.Duration `env:"NOTES_JWT_TOKEN_TTL" env-default:"720h"`
	BCryptCost int           `env:"NOTES_BCRYPT_COST" env-default:"10"`
}
