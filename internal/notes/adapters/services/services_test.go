package services_test

import (
	"context"
	"testing"
	"time"

	adapters "gonote/internal/notes/adapters/services"
	"gonote/internal/notes/domain/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestJWT_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewJWT(testSecret, time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken(ctx, "user-1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestJWT_UniqueTokenIDs(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewJWT(testSecret, time.Hour)

	first, _, err := svc.GenerateAccessToken(ctx, "user-1", "alice")
	require.NoError(t, err)
	second, _, err := svc.GenerateAccessToken(ctx, "user-1", "alice")
	require.NoError(t, err)

	c1, err := svc.ValidateAccessToken(ctx, first)
	require.NoError(t, err)
	c2, err := svc.ValidateAccessToken(ctx, second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.TokenID, c2.TokenID)
}

func TestJWT_Rejections(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewJWT(testSecret, time.Hour)

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims adapters.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}

	valid := adapters.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noUser := valid
	noUser.UserID = ""

	noExpiry := valid
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"garbage", "not-a-token", services.ErrInvalidToken},
		{"empty", "", services.ErrInvalidToken},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, []byte("other"), valid), services.ErrInvalidToken},
		{"wrong algorithm", sign(t, jwt.SigningMethodHS512, []byte(testSecret), valid), services.ErrInvalidToken},
		{"expired", sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired), services.ErrExpiredToken},
		{"missing user id", sign(t, jwt.SigningMethodHS256, []byte(testSecret), noUser), services.ErrInvalidToken},
		{"missing expiry", sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry), services.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateAccessToken(ctx, tt.token)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestJWT_EmptySecret(t *testing.T) {
	svc := adapters.NewJWT("", time.Hour)

	_, _, err := svc.GenerateAccessToken(context.Background(), "user-1", "alice")
	require.ErrorIs(t, err, services.ErrTokenGeneration)
	assert.ErrorIs(t, err, adapters.ErrEmptySecret)
}

func TestBcrypt(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewBcrypt(4)

	hash, err := svc.Hash(ctx, "password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	ok, err := svc.Verify(ctx, "password123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Verify(ctx, "wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.Hash(ctx, "")
	require.ErrorIs(t, err, adapters.ErrEmptyPassword)

	_, err = svc.Verify(ctx, "password123", "not-a-bcrypt-hash")
	require.Error(t, err)
}

func TestServiceFactory(t *testing.T) {
	f := adapters.NewServiceFactory(testSecret, time.Minute, 0)

	assert.NotNil(t, f.PasswordService())
	assert.NotNil(t, f.TokenService())
	assert.Same(t, f.TokenService(), f.TokenService())
}
