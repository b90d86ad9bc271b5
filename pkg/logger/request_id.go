package logger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxRequestIDLen ограничивает длину идентификатора, пришедшего от клиента.
const maxRequestIDLen = 128

type requestIDKey struct{}

// NewRequestIDContext кладет идентификатор запроса в контекст.
// Пустой или непригодный для логов id заменяется сгенерированным.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, NormalizeRequestID(requestID))
}

// NormalizeRequestID возвращает id клиента, если он состоит из печатных ASCII символов
// и не длиннее maxRequestIDLen, иначе новый uuid.
func NormalizeRequestID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxRequestIDLen || strings.IndexFunc(raw, unsafeForLogs) >= 0 {
		return GenerateRequestID()
	}
	return raw
}

func unsafeForLogs(r rune) bool {
	return r < '!' || r > '~'
}

// GetRequestID извлекает идентификатор запроса.
func GetRequestID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

func GenerateRequestID() string {
	return uuid.NewString()
}

// WithRequestID возвращает дочерний логгер с полем request_id; без id в контексте возвращает l.
func (l *Logger) WithRequestID(ctx context.Context) *Logger {
	id, ok := GetRequestID(ctx)
	if !ok {
		return l
	}
	return l.With(zap.String(RequestID, id))
}
