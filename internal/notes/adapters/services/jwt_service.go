package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gonote/internal/notes/domain/services"
	svc "gonote/internal/notes/ports/services"
	"gonote/pkg/logger"
)

const (
	methodGenerateAccessToken = "GenerateAccessToken"
	methodValidateAccessToken = "ValidateAccessToken"

	msgTokenGenerated = "access token generated"
	msgTokenExpired   = "access token expired"
	msgTokenRejected  = "access token rejected"

	errCtxGeneratingToken = "generating token"
	errCtxValidatingToken = "validating token"
)

// ErrEmptySecret возвращается, если сервис создан без ключа подписи.
var ErrEmptySecret = errors.New("empty signing secret")

// Claims - содержимое JWT токена доступа.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// ServiceJWT выпускает и проверяет HS256 токены.
type ServiceJWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWT создает сервис токенов.
func NewJWT(secretKey string, ttl time.Duration) svc.TokenService {
	return &ServiceJWT{
		secret: []byte(secretKey),
		ttl:    ttl,
		now:    time.Now,
	}
}

// GenerateAccessToken подписывает токен для пользователя; jti уникален для каждого токена.
func (s *ServiceJWT) GenerateAccessToken(ctx context.Context, userID, username string) (string, time.Time, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGenerateAccessToken), zap.String("user_id", userID))

	if len(s.secret) == 0 {
		log.Error(ctx, ErrEmptySecret.Error())
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrTokenGeneration, ErrEmptySecret)
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		log.Error(ctx, "error signing token", zap.Error(err))
		return "", time.Time{}, fmt.Errorf("%s: %w: %w", errCtxGeneratingToken, services.ErrTokenGeneration, err)
	}

	log.Debug(ctx, msgTokenGenerated, zap.Time("expires_at", expiresAt))
	return signed, expiresAt, nil
}

// ValidateAccessToken проверяет подпись и срок действия токена.
func (s *ServiceJWT) ValidateAccessToken(ctx context.Context, tokenString string) (*services.TokenClaims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodValidateAccessToken))

	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrExpiredToken)
		}
		log.Debug(ctx, msgTokenRejected, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxValidatingToken, services.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" || claims.ID == "" {
		log.Debug(ctx, msgTokenRejected)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrInvalidToken)
	}

	return &services.TokenClaims{
		TokenID:   claims.ID,
		UserID:    claims.UserID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
