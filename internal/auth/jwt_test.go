package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/auth"
)

func newTM(accessTTL, refreshTTL time.Duration) *auth.TokenManager {
	return auth.NewTokenManager("access-secret", "refresh-secret", "trip-api", accessTTL, refreshTTL)
}

func TestTokenManager_GenerateAndParse(t *testing.T) {
	tm := newTM(time.Hour, 24*time.Hour)

	pair, err := tm.GeneratePair("user-1")
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := tm.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)

	claims, err = tm.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenManager_ParseAccess_RejectsRefreshToken(t *testing.T) {
	tm := newTM(time.Hour, 24*time.Hour)

	pair, err := tm.GeneratePair("user-1")
	require.NoError(t, err)

	// The pair uses separate secrets and type claims; tokens must not be
	// interchangeable in either direction.
	_, err = tm.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)

	_, err = tm.ParseRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenManager_ParseAccess_Expired(t *testing.T) {
	tm := newTM(-time.Minute, 24*time.Hour)

	pair, err := tm.GeneratePair("user-1")
	require.NoError(t, err)

	_, err = tm.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestTokenManager_ParseAccess_Garbage(t *testing.T) {
	tm := newTM(time.Hour, 24*time.Hour)

	_, err := tm.ParseAccess("not.a.token")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestTokenManager_ParseAccess_WrongSecret(t *testing.T) {
	tm := newTM(time.Hour, 24*time.Hour)
	other := auth.NewTokenManager("different-secret", "refresh-secret", "trip-api", time.Hour, 24*time.Hour)

	pair, err := other.GeneratePair("user-1")
	require.NoError(t, err)

	_, err = tm.ParseAccess(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.NoError(t, auth.VerifyPassword("s3cret-password", hash))
	assert.Error(t, auth.VerifyPassword("wrong-password", hash))
}
