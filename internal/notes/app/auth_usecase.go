package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"gonote/internal/notes/domain/entities"
	"gonote/internal/notes/domain/services"
	"gonote/internal/notes/ports/api"
	"gonote/internal/notes/ports/repositories"
	svc "gonote/internal/notes/ports/services"
	"gonote/pkg/logger"
)

const (
	methodRegister     = "Register"
	methodLogin        = "Login"
	methodAuthenticate = "Authenticate"
	methodLogout       = "Logout"

	msgUserRegistered   = "user registered"
	msgUserLoggedIn     = "user logged in"
	msgUserLoggedOut    = "user logged out"
	msgLoginUnknown     = "login attempt with unknown email"
	msgLoginBadPassword = "login attempt with wrong password"
	msgRevokedToken     = "revoked token presented"
	msgUnknownTokenUser = "token belongs to a missing user"

	errCtxCheckingUser     = "checking existing user"
	errCtxHashingPassword  = "hashing password"
	errCtxCreatingUser     = "creating user"
	errCtxIssuingToken     = "issuing token"
	errCtxFindingUser      = "finding user"
	errCtxVerifyingPass    = "verifying password"
	errCtxValidatingToken  = "validating token"
	errCtxCheckingRevoked  = "checking revocation"
	errCtxRevokingToken    = "revoking token"
	errCtxLoadingProfile   = "loading profile"
	errCtxCredentials      = "invalid credentials"
	errCtxEmailRegistered  = "email already registered"
	errCtxUnknownTokenUser = "resolving token user"
)

// AuthUseCaseImpl реализует api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
	blacklist   svc.TokenBlacklist
	now         func() time.Time
}

// NewAuthUseCase создает сервис аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
	blacklist svc.TokenBlacklist,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		blacklist:   blacklist,
		now:         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register создает пользователя и сразу выдает ему токен.
func (a *AuthUseCaseImpl) Register(ctx context.Context, username, email, password string) (*services.AuthResult, error) {
	email = normalizeEmail(email)
	log := logger.Log(ctx).With(zap.String("method", methodRegister), zap.String("email", email))

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, "failed to check existing user", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%s: %w", errCtxEmailRegistered, services.ErrEmailAlreadyExists)
	}

	hash, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, "failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user, err := a.userRepo.Create(ctx, &entities.User{
		Username:     strings.TrimSpace(username),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		// гонка двух регистраций ловится уникальным индексом
		if !errors.Is(err, services.ErrEmailAlreadyExists) {
			log.Error(ctx, "failed to create user", zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	result, err := a.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgUserRegistered, zap.String("user_id", user.ID))
	return result, nil
}

// Login проверяет email и пароль. Неизвестный email и неверный пароль неразличимы для клиента.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	email = normalizeEmail(email)
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginUnknown)
			return nil, fmt.Errorf("%s: %w", errCtxCredentials, services.ErrInvalidCredentials)
		}
		log.Error(ctx, "failed to find user", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	ok, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, "failed to verify password", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingPass, err)
	}
	if !ok {
		log.Debug(ctx, msgLoginBadPassword)
		return nil, fmt.Errorf("%s: %w", errCtxCredentials, services.ErrInvalidCredentials)
	}

	result, err := a.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	log.Info(ctx, msgUserLoggedIn, zap.String("user_id", user.ID))
	return result, nil
}

// Authenticate проверяет токен, его отзыв и существование пользователя.
func (a *AuthUseCaseImpl) Authenticate(ctx context.Context, token string) (*services.Identity, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))

	claims, err := a.tokenSvc.ValidateAccessToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, err)
	}

	revoked, err := a.blacklist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCheckingRevoked, err)
	}
	if revoked {
		log.Debug(ctx, msgRevokedToken, zap.String("user_id", claims.UserID))
		return nil, fmt.Errorf("%s: %w", errCtxValidatingToken, services.ErrRevokedToken)
	}

	user, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgUnknownTokenUser, zap.String("user_id", claims.UserID))
			return nil, fmt.Errorf("%s: %w", errCtxUnknownTokenUser, services.ErrInvalidToken)
		}
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	return &services.Identity{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		TokenID:   claims.TokenID,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

// Logout отзывает токен до его естественного истечения.
func (a *AuthUseCaseImpl) Logout(ctx context.Context, identity *services.Identity) error {
	log := logger.Log(ctx).With(zap.String("method", methodLogout), zap.String("user_id", identity.UserID))

	ttl := identity.ExpiresAt.Sub(a.now())
	if err := a.blacklist.Revoke(ctx, identity.TokenID, ttl); err != nil {
		return fmt.Errorf("%s: %w", errCtxRevokingToken, err)
	}

	log.Info(ctx, msgUserLoggedOut)
	return nil
}

// Profile возвращает пользователя по ID.
func (a *AuthUseCaseImpl) Profile(ctx context.Context, userID string) (*entities.User, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingProfile, err)
	}
	return user, nil
}

func (a *AuthUseCaseImpl) issue(ctx context.Context, user *entities.User) (*services.AuthResult, error) {
	token, _, err := a.tokenSvc.GenerateAccessToken(ctx, user.ID, user.Username)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to issue token", zap.String("user_id", user.ID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	return &services.AuthResult{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}
