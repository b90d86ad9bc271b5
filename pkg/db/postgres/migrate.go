package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// source
	"go.uber.org/zap"

	"gonote/pkg/logger"
)

const (
	logMigrationsApplied  = "migrations applied"
	logMigrationsUpToDate = "schema is up to date"

	errCreateMigrator = "failed to create migrator"
	errApplyMigration = "failed to apply migrations"
)

// Migrate применяет все up-миграции из sourceURL (например, file://migrations/notes).
func Migrate(ctx context.Context, sourceURL, dsn string) error {
	log := logger.Log(ctx).With(zap.String("source", sourceURL))

	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		log.Error(ctx, errCreateMigrator, zap.Error(err))
		return fmt.Errorf("%s: %w", errCreateMigrator, err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn(ctx, "closing migrator", zap.NamedError("source_error", srcErr), zap.NamedError("db_error", dbErr))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info(ctx, logMigrationsUpToDate)
			return nil
		}
		log.Error(ctx, errApplyMigration, zap.Error(err))
		return fmt.Errorf("%s: %w", errApplyMigration, err)
	}

	version, _, _ := m.Version()
	log.Info(ctx, logMigrationsApplied, zap.Uint("version", version))
	return nil
}
