package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService() TokenService {
	return TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "portfolio-test",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	tokens := newTokenService()

	hash, err := tokens.HashPassword("hunter2!")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2!", hash)
	assert.True(t, tokens.VerifyPassword("hunter2!", hash))
	assert.False(t, tokens.VerifyPassword("wrong", hash))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	tokens := newTokenService()

	signed, expiresAt, err := tokens.CreateAccessToken("admin", "admin@example.com", []string{"ADMIN"})
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, claims, err := tokens.ParseToken(signed)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, "admin", claims["sub"])
}

func TestAdminLogin(t *testing.T) {
	auth, err := NewAdminAuth(newTokenService(), "Admin@Example.com", "s3cret")
	require.NoError(t, err)

	access, refresh, expiresAt, err := auth.Login("admin@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Greater(t, expiresAt, time.Now().Unix())
}

func TestAdminLoginFailures(t *testing.T) {
	auth, err := NewAdminAuth(newTokenService(), "admin@example.com", "s3cret")
	require.NoError(t, err)

	_, _, _, err = auth.Login("admin@example.com", "wrong")
	serr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 401, serr.Status)

	_, _, _, err = auth.Login("other@example.com", "s3cret")
	serr, ok = err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 401, serr.Status)

	_, _, _, err = auth.Login("", "")
	serr, ok = err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 400, serr.Status)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	auth, err := NewAdminAuth(newTokenService(), "admin@example.com", "s3cret")
	require.NoError(t, err)

	access, _, _, err := auth.Login("admin@example.com", "s3cret")
	require.NoError(t, err)

	_, _, _, err = auth.Refresh(access)
	serr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 401, serr.Status)
}

func TestRefreshRoundTrip(t *testing.T) {
	auth, err := NewAdminAuth(newTokenService(), "admin@example.com", "s3cret")
	require.NoError(t, err)

	_, refresh, _, err := auth.Login("admin@example.com", "s3cret")
	require.NoError(t, err)

	access, nextRefresh, _, err := auth.Refresh(refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, nextRefresh)
}
