package service

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHookTokenService(t *testing.T) {
	service := NewHookTokenService()
	assert.NotNil(t, service)
	assert.IsType(t, &hookTokenService{}, service)
}

func TestHookTokenService_GenerateToken(t *testing.T) {
	service := NewHookTokenService()

	t.Run("Success_GeneratesValidToken", func(t *testing.T) {
		plainToken, tokenHash, err := service.GenerateToken()
		require.NoError(t, err)

		decoded, err := base64.RawURLEncoding.DecodeString(plainToken)
		require.NoError(t, err)
		assert.Len(t, decoded, 32)

		assert.NotEqual(t, plainToken, tokenHash)
		assert.Contains(t, tokenHash, "$argon2id$")
		assert.True(t, service.CompareToken(plainToken, tokenHash))
	})

	t.Run("Success_GeneratesUniqueTokens", func(t *testing.T) {
		plain1, hash1, err := service.GenerateToken()
		require.NoError(t, err)
		plain2, hash2, err := service.GenerateToken()
		require.NoError(t, err)

		assert.NotEqual(t, plain1, plain2)
		assert.NotEqual(t, hash1, hash2)
	})
}

func TestHookTokenService_HashToken(t *testing.T) {
	service := NewHookTokenService()

	hash1, err := service.HashToken("hook-token")
	require.NoError(t, err)
	hash2, err := service.HashToken("hook-token")
	require.NoError(t, err)

	// different salts
	assert.NotEqual(t, hash1, hash2)
	assert.True(t, service.CompareToken("hook-token", hash1))
	assert.True(t, service.CompareToken("hook-token", hash2))
}

func TestHookTokenService_CompareToken(t *testing.T) {
	service := NewHookTokenService()

	tokenHash, err := service.HashToken("correct-token")
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		hash     string
		expected bool
	}{
		{"correct token", "correct-token", tokenHash, true},
		{"wrong token", "wrong-token", tokenHash, false},
		{"case sensitive", "CORRECT-TOKEN", tokenHash, false},
		{"empty token", "", tokenHash, false},
		{"empty hash", "correct-token", "", false},
		{"invalid hash format", "correct-token", "invalid-hash-format", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.CompareToken(tt.token, tt.hash))
		})
	}
}

func TestHookTokenService_CompareToken_RemembersVerifiedToken(t *testing.T) {
	service := NewHookTokenService().(*hookTokenService)

	tokenHash, err := service.HashToken("correct-token")
	require.NoError(t, err)

	require.True(t, service.CompareToken("correct-token", tokenHash))
	assert.Len(t, service.verified, 1)

	// Cached path still rejects other tokens for the same hash.
	assert.False(t, service.CompareToken("wrong-token", tokenHash))
	assert.True(t, service.CompareToken("correct-token", tokenHash))
	assert.Len(t, service.verified, 1)
}
