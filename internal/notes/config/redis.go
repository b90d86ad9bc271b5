package config

import (
	"time"

	"gonote/pkg/db/redis"
)

// RedisConfig содержит настройки хранилища отозванных токенов.
type RedisConfig struct {
	Host     string        `env:"NOTES_REDIS_HOST" env-default:"localhost"`
	Port     int           `env:"NOTES_REDIS_PORT" env-default:"6379"`
	Password string        `env:"NOTES_REDIS_PASSWORD" env-default:""`
	DB       int           `env:"NOTES_REDIS_DB" env-default:"0"`
	PoolSize int           `env:"NOTES_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `env:"NOTES_REDIS_TIMEOUT" env-default:"3s"`
}

// ToClientConfig преобразует настройки в конфигурацию клиента.
func (r *RedisConfig) ToClientConfig() redis.Config {
	return redis.Config{
		Host:     r.Host,
		Port:     r.Port,
		Password: r.Password,
		DB:       r.DB,
		PoolSize: r.PoolSize,
		Timeout:  r.Timeout,
	}
}
