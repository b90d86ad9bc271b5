package config

import (
	"strings"

	"gonote/pkg/logger"
)

// LoggingConfig содержит настройки логирования.
type LoggingConfig struct {
	Level string `env:"NOTES_LOGGER_LEVEL" env-default:"info"`
	Mode  string `env:"NOTES_LOGGER_MODE" env-default:"development"`
}

// GetEnvironment переводит режим в окружение логгера.
func (l *LoggingConfig) GetEnvironment() logger.Environment {
	if strings.EqualFold(l.Mode, string(logger.Production)) {
		return logger.Production
	}
	return logger.Development
}
