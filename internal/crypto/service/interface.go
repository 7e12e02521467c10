// Package service implements the field codec and the primitives behind it:
// AEAD ciphers, key providers and the KMS adapter.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
)

// AEAD seals and opens envelopes with a fixed key.
type AEAD interface {
	// Seal encrypts plaintext under a fresh random nonce.
	Seal(plaintext []byte) (cryptoDomain.Envelope, error)

	// Open verifies the envelope's tag and returns the plaintext.
	Open(envelope cryptoDomain.Envelope) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// KeyProvider returns the encryption key. Implementations read it on every call;
// callers own the returned slice and zero it when done.
type KeyProvider interface {
	Key(ctx context.Context) ([]byte, error)
}
