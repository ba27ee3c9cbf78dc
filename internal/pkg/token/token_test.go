package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestGenerateAndValidate(t *testing.T) {
	signed, err := Generate(42, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Validate(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "port-russell", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateExpired(t *testing.T) {
	signed, err := Generate(1, testSecret, -time.Minute)
	require.NoError(t, err)

	claims, err := Validate(signed, testSecret)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateWrongSecret(t *testing.T) {
	signed, err := Generate(1, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := Validate(signed, "another-secret")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateGarbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "hello.world"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := Validate(tt.token, testSecret)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestTokensCarryUniqueIDs(t *testing.T) {
	first, err := Generate(7, testSecret, time.Hour)
	require.NoError(t, err)
	second, err := Generate(7, testSecret, time.Hour)
	require.NoError(t, err)

	a, err := Validate(first, testSecret)
	require.NoError(t, err)
	b, err := Validate(second, testSecret)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}
