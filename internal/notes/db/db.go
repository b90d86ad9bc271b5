// Package db поднимает базу данных сервиса заметок: применяет миграции и открывает пул.
package db

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gonote/internal/notes/config"
	"gonote/pkg/db/postgres"
	"gonote/pkg/logger"
)

const (
	logDBInitializing    = "initializing notes database"
	logDBInitialized     = "notes database initialized"
	logMigrationStarting = "applying notes migrations"
)

const (
	errDBMigrations = "failed to apply notes migrations"
	errDBConnection = "failed to connect to notes database"
	errGetPath      = "failed to resolve migrations path"
	errDBPing       = "notes database is unreachable"
)

const filePrefix = "file://"

// DB - соединение с базой заметок.
type DB struct {
	database *postgres.Database
}

// New применяет миграции и открывает пул соединений.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, logDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int32("min_conn", cfg.MinConn),
		zap.Int32("max_conn", cfg.MaxConn))

	source, err := migrationsSource(cfg.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errDBMigrations, err)
	}

	log.Info(ctx, logMigrationStarting, zap.String("migrations_path", source))
	if err := postgres.Migrate(ctx, source, cfg.GetConnectionURL()); err != nil {
		return nil, fmt.Errorf("%s: %w", errDBMigrations, err)
	}

	database, err := postgres.New(ctx, cfg.GetConnectionURL(), cfg.PoolOptions())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errDBConnection, err)
	}

	log.Info(ctx, logDBInitialized)
	return &DB{database: database}, nil
}

func migrationsSource(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return filePrefix + filepath.ToSlash(dir), nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errGetPath, err)
	}
	return filePrefix + filepath.ToSlash(abs), nil
}

// Pool возвращает пул соединений.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}

// Ping проверяет соединение; используется /health.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.database.Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", errDBPing, err)
	}
	return nil
}

// Close закрывает пул.
func (db *DB) Close(ctx context.Context) error {
	return db.database.Close(ctx)
}
