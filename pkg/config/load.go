// Package config загружает конфигурацию сервиса из .env файла и переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"gonote/pkg/logger"
)

// PathEnv - переменная окружения с путем к .env файлу.
const PathEnv = "NOTES_CONFIG_PATH"

const (
	msgLoadingConfiguration = "loading configuration"
	msgConfigurationLoaded  = "configuration loaded"
	msgEnvFileMissing       = "config file not found, reading environment only"
	msgFailedLoad           = "failed to load configuration"

	errReadConfigFile = "failed to read config file"
	errReadEnv        = "failed to read environment"
)

// DefaultPath возвращает путь к .env файлу по умолчанию.
func DefaultPath() string {
	return filepath.Join("deploy", ".env")
}

// Load заполняет T из .env файла (если он есть) и окружения.
func Load[T any](ctx context.Context, serviceName string) (*T, error) {
	log := logger.Log(ctx).With(zap.String("service", serviceName))

	path := os.Getenv(PathEnv)
	if path == "" {
		path = DefaultPath()
	}

	log.Info(ctx, msgLoadingConfiguration, zap.String("path", path))

	var cfg T

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			log.Error(ctx, msgFailedLoad, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errReadConfigFile, err)
		}
	} else {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Error(ctx, msgFailedLoad, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errReadConfigFile, err)
		}
		log.Warn(ctx, msgEnvFileMissing, zap.String("path", path))
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Error(ctx, msgFailedLoad, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errReadEnv, err)
		}
	}

	log.Info(ctx, msgConfigurationLoaded)
	return &cfg, nil
}
