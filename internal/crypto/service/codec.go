package service

import (
	"context"
	"encoding/base64"
	"strings"

	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
)

// payloadEncoding is the URL-safe alphabet. Strict mode rejects non-zero trailing
// bits so that every change to the encoded payload changes the decoded bytes.
var payloadEncoding = base64.URLEncoding.Strict()

// Codec turns field values into placeholders and back.
//
// A placeholder is PlaceholderPrefix + unpadded URL-safe base64(envelope) + "@" +
// PlaceholderDomain, where envelope is nonce || ciphertext || tag. The key is
// fetched from the KeyProvider for each call and zeroed afterwards.
type Codec struct {
	keys        KeyProvider
	aeadManager AEADManager
	algorithm   cryptoDomain.Algorithm
}

// NewCodec creates a Codec.
func NewCodec(keys KeyProvider, aeadManager AEADManager, algorithm cryptoDomain.Algorithm) *Codec {
	return &Codec{
		keys:        keys,
		aeadManager: aeadManager,
		algorithm:   algorithm,
	}
}

// Encrypt seals plaintext under a fresh nonce and returns its placeholder.
// Two calls with the same plaintext return different placeholders.
func (c *Codec) Encrypt(ctx context.Context, plaintext string) (string, error) {
	cipher, err := c.cipher(ctx)
	if err != nil {
		return "", err
	}

	envelope, err := cipher.Seal([]byte(plaintext))
	if err != nil {
		return "", err
	}

	payload := base64.RawURLEncoding.EncodeToString(envelope.Bytes())
	return cryptoDomain.NewPlaceholder(payload), nil
}

// Decrypt returns candidate unchanged when it is not a placeholder. Otherwise it
// decodes and opens the envelope; any decoding or tag failure is reported as
// an ErrAuthenticationFailure, never passed through.
func (c *Codec) Decrypt(ctx context.Context, candidate string) (string, error) {
	payload, ok := cryptoDomain.PlaceholderPayload(candidate)
	if !ok {
		return candidate, nil
	}

	cipher, err := c.cipher(ctx)
	if err != nil {
		return "", err
	}

	raw, err := payloadEncoding.DecodeString(restorePadding(payload))
	if err != nil {
		return "", cryptoDomain.ErrMalformedEnvelope
	}

	envelope, err := cryptoDomain.ParseEnvelope(raw)
	if err != nil {
		return "", err
	}

	plaintext, err := cipher.Open(envelope)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// IsEncrypted reports whether value is a placeholder. It never touches the key.
func (c *Codec) IsEncrypted(value string) bool {
	return cryptoDomain.IsEncrypted(value)
}

func (c *Codec) cipher(ctx context.Context) (AEAD, error) {
	key, err := c.keys.Key(ctx)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	return c.aeadManager.CreateCipher(key, c.algorithm)
}

// restorePadding re-adds the '=' characters dropped on encode, based on length mod 4.
func restorePadding(payload string) string {
	payload = strings.TrimRight(payload, "=")
	if rem := len(payload) % 4; rem != 0 {
		payload += strings.Repeat("=", 4-rem)
	}
	return payload
}
