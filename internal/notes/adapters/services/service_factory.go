// Package services содержит реализации токенов и хеширования паролей.
package services

import (
	"time"

	"gonote/internal/notes/ports/services"
)

// ServiceFactory собирает сервисы аутентификации.
type ServiceFactory struct {
	passwordService services.PasswordService
	tokenService    services.TokenService
}

// NewServiceFactory создает фабрику сервисов.
func NewServiceFactory(jwtSecretKey string, tokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		tokenService:    NewJWT(jwtSecretKey, tokenTTL),
	}
}

func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

func (f *ServiceFactory) TokenService() services.TokenService {
	return f.tokenService
}
