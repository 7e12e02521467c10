package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
)

// AESGCMCipher implements AEAD using AES-256-GCM with a 12-byte random nonce
// and a 16-byte tag. Safe for concurrent use.
type AESGCMCipher struct {
	aead cipher.AEAD
}

// NewAESGCM creates a new AES-256-GCM cipher. The key must be exactly 32 bytes.
func NewAESGCM(key []byte) (*AESGCMCipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCMCipher{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh nonce. No additional data is bound.
func (a *AESGCMCipher) Seal(plaintext []byte) (cryptoDomain.Envelope, error) {
	return seal(a.aead, plaintext)
}

// Open verifies and decrypts an envelope.
func (a *AESGCMCipher) Open(envelope cryptoDomain.Envelope) ([]byte, error) {
	return open(a.aead, envelope)
}

func seal(aead cipher.AEAD, plaintext []byte) (cryptoDomain.Envelope, error) {
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return cryptoDomain.Envelope{}, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return cryptoDomain.EnvelopeFromSealed(nonce, aead.Seal(nil, nonce, plaintext, nil))
}

func open(aead cipher.AEAD, envelope cryptoDomain.Envelope) ([]byte, error) {
	if len(envelope.Nonce) != aead.NonceSize() || len(envelope.Tag) != aead.Overhead() {
		return nil, cryptoDomain.ErrMalformedEnvelope
	}
	plaintext, err := aead.Open(nil, envelope.Nonce, envelope.Sealed(), nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	return plaintext, nil
}
