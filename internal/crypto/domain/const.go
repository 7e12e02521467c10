// Package domain defines the encryption primitives shared by every component:
// the placeholder grammar, the AEAD envelope layout and the key error taxonomy.
package domain

// Algorithm represents the AEAD used to seal field values.
//
// The placeholder carries no algorithm identifier, so every process that reads
// or writes the same data must be configured with the same algorithm.
type Algorithm string

const (
	// AESGCM represents AES-256-GCM. It is the default and the interoperable choice.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents ChaCha20-Poly1305, for hosts without AES acceleration.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

const (
	// KeySize is the required key length in bytes for both algorithms.
	KeySize = 32

	// NonceSize is the nonce length in bytes for both algorithms.
	NonceSize = 12

	// TagSize is the authentication tag length in bytes for both algorithms.
	TagSize = 16
)

// ParseAlgorithm converts a configuration string into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM, ChaCha20:
		return Algorithm(s), nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
