package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken("user1", "user@example.com", "customer")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "customer", claims.UserType)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenCarriesRefreshType(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateRefreshToken("user1", "user@example.com", "business")
	assert.NoError(t, err)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "refresh", claims.Type)
	assert.Equal(t, "business", claims.UserType)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-one")
	token, err := GenerateToken("user1", "user@example.com", "customer")
	assert.NoError(t, err)

	InitJWT("secret-two")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	InitJWT("test-secret")
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}
