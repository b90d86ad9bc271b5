// Package postgres управляет пулом соединений pgx и миграциями схемы.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"gonote/pkg/logger"
)

const (
	logConnecting = "connecting to postgres"
	logConnected  = "connected to postgres"
	logClosing    = "closing postgres pool"
)

const (
	errParseConfig = "failed to parse postgres dsn"
	errCreatePool  = "failed to create postgres pool"
	errPing        = "failed to ping postgres"
)

// PoolOptions ограничивает размер пула.
type PoolOptions struct {
	MinConns int32
	MaxConns int32
}

// Database владеет пулом соединений.
type Database struct {
	pool *pgxpool.Pool
}

// ParseConfig разбирает DSN и применяет ограничения пула.
func ParseConfig(dsn string, opts PoolOptions) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errParseConfig, err)
	}
	if opts.MinConns > 0 {
		poolCfg.MinConns = opts.MinConns
	}
	if opts.MaxConns > 0 {
		poolCfg.MaxConns = opts.MaxConns
	}
	return poolCfg, nil
}

// New открывает пул и проверяет соединение.
func New(ctx context.Context, dsn string, opts PoolOptions) (*Database, error) {
	log := logger.Log(ctx).With(zap.String("component", "postgres"))
	log.Info(ctx, logConnecting)

	poolCfg, err := ParseConfig(dsn, opts)
	if err != nil {
		log.Error(ctx, errParseConfig, zap.Error(err))
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		log.Error(ctx, errCreatePool, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		log.Error(ctx, errPing, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errPing, err)
	}

	log.Info(ctx, logConnected,
		zap.Int32("min_conns", poolCfg.MinConns),
		zap.Int32("max_conns", poolCfg.MaxConns))
	return &Database{pool: pool}, nil
}

// Pool возвращает пул соединений.
func (db *Database) Pool() *pgxpool.Pool {
	return db.pool
}

func (db *Database) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

// Close закрывает пул; сигнатура подходит для shutdown.Wait.
func (db *Database) Close(ctx context.Context) error {
	logger.Log(ctx).Info(ctx, logClosing)
	db.pool.Close()
	return nil
}
