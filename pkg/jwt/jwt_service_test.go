package jwt

import (
	"Recipe-Share-Backend/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")
	userID := uuid.NewString()

	token, err := service.GenerateToken(userID, domain.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, gotRole, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, domain.RoleUser, gotRole)
}

func TestInvalidToken(t *testing.T) {
	service := NewJWTService("test-secret")

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateToken(uuid.NewString(), domain.RoleUser)
	require.NoError(t, err)

	_, _, err = NewJWTService("secret-b").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
