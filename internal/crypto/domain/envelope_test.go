package domain

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/sealedfields/internal/errors"
)

func TestEnvelope_RoundTrip(t *testing.T) {
	nonce := bytes.Repeat([]byte{1}, NonceSize)
	ciphertext := []byte("ciphertext")
	tag := bytes.Repeat([]byte{2}, TagSize)

	raw := Envelope{Nonce: nonce, Ciphertext: ciphertext, Tag: tag}.Bytes()
	assert.Len(t, raw, NonceSize+len(ciphertext)+TagSize)
	assert.Equal(t, nonce, raw[:NonceSize])
	assert.Equal(t, tag, raw[len(raw)-TagSize:])

	env, err := ParseEnvelope(raw)
	require.NoError(t, err)
	assert.Equal(t, nonce, env.Nonce)
	assert.Equal(t, ciphertext, env.Ciphertext)
	assert.Equal(t, tag, env.Tag)
	assert.Equal(t, append(append([]byte{}, ciphertext...), tag...), env.Sealed())
}

func TestParseEnvelope_TooShort(t *testing.T) {
	_, err := ParseEnvelope(make([]byte, NonceSize+TagSize-1))
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
	assert.True(t, apperrors.Is(err, apperrors.ErrAuthenticationFailure))
}

func TestParseEnvelope_EmptyCiphertext(t *testing.T) {
	env, err := ParseEnvelope(make([]byte, NonceSize+TagSize))
	require.NoError(t, err)
	assert.Empty(t, env.Ciphertext)
}

func TestEnvelopeFromSealed(t *testing.T) {
	nonce := make([]byte, NonceSize)
	sealed := append([]byte("abc"), make([]byte, TagSize)...)

	env, err := EnvelopeFromSealed(nonce, sealed)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), env.Ciphertext)

	_, err = EnvelopeFromSealed(nonce[:4], sealed)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)

	_, err = EnvelopeFromSealed(nonce, sealed[:TagSize-1])
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("aes-gcm")
	require.NoError(t, err)
	assert.Equal(t, AESGCM, alg)

	alg, err = ParseAlgorithm("chacha20-poly1305")
	require.NoError(t, err)
	assert.Equal(t, ChaCha20, alg)

	_, err = ParseAlgorithm("rot13")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	assert.True(t, apperrors.Is(err, apperrors.ErrConfiguration))
}

func TestZero(t *testing.T) {
	key := []byte{1, 2, 3}
	Zero(key)
	assert.Equal(t, []byte{0, 0, 0}, key)
	Zero(nil)
}
