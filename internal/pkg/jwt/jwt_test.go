package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/labourhub/labour-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken("0190a3b4-0000-7000-8000-000000000001", "ramesh", user.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0190a3b4-0000-7000-8000-000000000001", claims["user_id"])
	assert.Equal(t, "ramesh", claims["username"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	assert.False(t, svc.IsTokenRevoked("abc"))
	svc.RevokeToken("abc", time.Now().Add(time.Hour).Unix())
	assert.True(t, svc.IsTokenRevoked("abc"))

	// expired entries are purged on the next revocation
	svc.RevokeToken("old", time.Now().Add(-time.Minute).Unix())
	svc.RevokeToken("new", time.Now().Add(time.Hour).Unix())
	assert.False(t, svc.IsTokenRevoked("old"))
	assert.True(t, svc.IsTokenRevoked("new"))
}

func TestClaimsFromContext(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	t.Run("with token", func(t *testing.T) {
		ctx, err := svc.NewContext(context.Background(), "owner-1", "ramesh", user.RoleAdmin)
		require.NoError(t, err)

		claims, err := ClaimsFromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, "owner-1", claims.UserID)
		assert.Equal(t, "ramesh", claims.Username)
		assert.Equal(t, user.RoleAdmin, claims.Role)

		ownerID, err := OwnerIDFromContext(ctx)
		require.NoError(t, err)
		assert.Equal(t, "owner-1", ownerID)
	})

	t.Run("without token", func(t *testing.T) {
		_, err := OwnerIDFromContext(context.Background())
		assert.ErrorIs(t, err, ErrMissingClaims)
	})
}
