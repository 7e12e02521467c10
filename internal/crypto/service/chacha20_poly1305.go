package service

import (
	"crypto/cipher"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
)

// ChaCha20Poly1305Cipher implements AEAD using ChaCha20-Poly1305. It shares the
// nonce and tag sizes of AES-GCM, so envelopes have the same layout.
type ChaCha20Poly1305Cipher struct {
	aead cipher.AEAD
}

// NewChaCha20Poly1305 creates a new ChaCha20-Poly1305 cipher. The key must be exactly 32 bytes.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}

	return &ChaCha20Poly1305Cipher{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh nonce.
func (c *ChaCha20Poly1305Cipher) Seal(plaintext []byte) (cryptoDomain.Envelope, error) {
	return seal(c.aead, plaintext)
}

// Open verifies and decrypts an envelope.
func (c *ChaCha20Poly1305Cipher) Open(envelope cryptoDomain.Envelope) ([]byte, error) {
	return open(c.aead, envelope)
}
