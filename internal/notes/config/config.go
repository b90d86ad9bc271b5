// Package config описывает конфигурацию сервиса заметок.
package config

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	pkgconfig "gonote/pkg/config"
	"gonote/pkg/logger"
)

const serviceName = "notes"

const (
	logConfigLoaded = "notes configuration loaded"
	errLoadConfig   = "failed to load notes configuration"
)

// Config - корневая конфигурация сервиса.
type Config struct {
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Logging  LoggingConfig
	Shutdown ShutdownConfig
}

// ShutdownConfig задает время на корректное завершение.
type ShutdownConfig struct {
	Timeout time.Duration `env:"NOTES_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load читает конфигурацию из .env файла и окружения.
func Load(ctx context.Context) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, serviceName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, logConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("redis_address", cfg.Redis.ToClientConfig().Addr()),
		zap.Duration("token_ttl", cfg.JWT.TokenTTL),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Duration("shutdown_timeout", cfg.Shutdown.Timeout))

	return cfg, nil
}
