package config

import (
	"fmt"
	"time"
)

// HTTPConfig настраивает HTTP сервер.
type HTTPConfig struct {
	Host         string        `env:"NOTES_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `env:"NOTES_HTTP_PORT" env-default:"5000"`
	ReadTimeout  time.Duration `env:"NOTES_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"NOTES_HTTP_WRITE_TIMEOUT" env-default:"10s"`
	BodyLimit    int           `env:"NOTES_HTTP_BODY_LIMIT" env-default:"1048576"`
	StaticDir    string        `env:"NOTES_HTTP_STATIC_DIR" env-default:"./public"`
	CORSOrigins  []string      `env:"NOTES_HTTP_CORS_ORIGINS" env-separator:"," env-default:"*"`
}

// GetAddress возвращает адрес для прослушивания.
func (h *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
