package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", 15)

	token, err := m.Generate("uno", "Uno")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "uno", claims.LoginID)
	assert.Equal(t, "Uno", claims.Nickname)
	assert.Equal(t, "uno", claims.Subject)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", 15).Generate("uno", "Uno")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 15).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -1)

	token, err := m.Generate("uno", "Uno")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateGarbage(t *testing.T) {
	_, err := NewManager("test-secret", 15).Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
