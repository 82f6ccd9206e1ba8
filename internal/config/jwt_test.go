package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend-promo/internal/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := config.GenerateToken(7, "Ichsan", "ichsan@tanyo.id", "super_user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := config.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "Ichsan", claims.Nama)
	assert.Equal(t, "ichsan@tanyo.id", claims.Email)
	assert.Equal(t, "super_user", claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-satu")
	token, err := config.GenerateToken(1, "Editor", "editor@tanyo.id", "editor")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-dua")
	_, err = config.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := config.ValidateToken("bukan.token.jwt")
	assert.Error(t, err)
}
