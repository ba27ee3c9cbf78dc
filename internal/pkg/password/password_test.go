package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, Verify("correct horse battery staple", hash))
	assert.False(t, Verify("wrong password", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same input")
	require.NoError(t, err)
	second, err := Hash("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same input", first))
	assert.True(t, Verify("same input", second))
}

func TestVerifyFailsClosed(t *testing.T) {
	assert.False(t, Verify("anything", ""))
	assert.False(t, Verify("anything", "not-a-bcrypt-hash"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"empty", "", false},
		{"too short", "1234567", false},
		{"minimum length", "12345678", true},
		{"long", "a perfectly reasonable passphrase", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.password))
		})
	}
}
