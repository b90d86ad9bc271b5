package services

import (
	"errors"
	"time"
)

// Ошибки домена аутентификации.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrRevokedToken       = errors.New("token has been revoked")
	ErrTokenGeneration    = errors.New("failed to generate token")
	ErrHashingFailed      = errors.New("failed to hash password")
)

// TokenClaims - проверенное содержимое токена доступа.
type TokenClaims struct {
	TokenID   string
	UserID    string
	Username  string
	ExpiresAt time.Time
}

// Identity - пользователь, от имени которого выполняется запрос.
type Identity struct {
	UserID   string
	Username string
	Email    string
	TokenID  string
	// ExpiresAt нужен, чтобы отзыв токена хранился ровно до его истечения.
	ExpiresAt time.Time
}

// AuthResult возвращается после регистрации или входа.
type AuthResult struct {
	UserID   string
	Username string
	Email    string
	Token    string
}
