package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParser_ValidToken(t *testing.T) {
	parser := NewParser("secret")
	token := sign(t, "secret", jwt.MapClaims{
		"sub":  "dispatcher-1",
		"role": "operator",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	principal, err := parser.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "dispatcher-1", principal.Subject)
	assert.Equal(t, "operator", principal.Role)
}

func TestParser_WrongSecret(t *testing.T) {
	parser := NewParser("secret")
	token := sign(t, "other", jwt.MapClaims{"sub": "dispatcher-1"})

	_, err := parser.Parse(token)
	require.Error(t, err)
}

func TestParser_MissingSubject(t *testing.T) {
	parser := NewParser("secret")
	token := sign(t, "secret", jwt.MapClaims{"role": "operator"})

	_, err := parser.Parse(token)
	require.Error(t, err)
}

func TestParser_ExpiredToken(t *testing.T) {
	parser := NewParser("secret")
	token := sign(t, "secret", jwt.MapClaims{
		"sub": "dispatcher-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := parser.Parse(token)
	require.Error(t, err)
}
