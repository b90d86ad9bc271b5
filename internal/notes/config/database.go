package config

import (
	"fmt"
	"net/url"

	"gonote/pkg/db/postgres"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host          string `env:"NOTES_POSTGRES_HOST" env-default:"localhost"`
	Port          int    `env:"NOTES_POSTGRES_PORT" env-default:"5432"`
	User          string `env:"NOTES_POSTGRES_USER" env-default:"postgres"`
	Password      string `env:"NOTES_POSTGRES_PASSWORD" env-default:"postgres"`
	Database      string `env:"NOTES_POSTGRES_DB" env-default:"notes"`
	SSLMode       string `env:"NOTES_POSTGRES_SSLMODE" env-default:"disable"`
	MinConn       int32  `env:"NOTES_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn       int32  `env:"NOTES_POSTGRES_MAX_CONN" env-default:"10"`
	MigrationsDir string `env:"NOTES_MIGRATIONS_DIR" env-default:"migrations/notes"`
}

// GetConnectionURL возвращает URL подключения; он же используется для миграций.
func (p *PostgresConfig) GetConnectionURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     p.Database,
		RawQuery: "sslmode=" + url.QueryEscape(p.SSLMode),
	}
	return u.String()
}

// PoolOptions возвращает ограничения пула.
func (p *PostgresConfig) PoolOptions() postgres.PoolOptions {
	return postgres.PoolOptions{MinConns: p.MinConn, MaxConns: p.MaxConn}
}
