package domain

import (
	"github.com/allisson/sealedfields/internal/errors"
)

// Configuration errors. Every operation that needs the key fails closed on these.
var (
	// ErrKeyNotSet indicates no encryption key is configured.
	ErrKeyNotSet = errors.Wrap(errors.ErrConfiguration, "encryption key not set")

	// ErrInvalidKeyEncoding indicates the configured key is not valid base64.
	ErrInvalidKeyEncoding = errors.Wrap(errors.ErrConfiguration, "encryption key is not valid base64")

	// ErrInvalidKeySize indicates the decoded key is not KeySize bytes long.
	ErrInvalidKeySize = errors.Wrap(errors.ErrConfiguration, "invalid key size")

	// ErrUnsupportedAlgorithm indicates an unknown ENCRYPTION_ALGORITHM value.
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrConfiguration, "unsupported algorithm")
)

// Decryption errors. A placeholder that fails either check is reported, never
// passed through as if it were an address.
var (
	// ErrMalformedEnvelope indicates the encoded payload could not be decoded or is
	// too short to hold a nonce and a tag.
	ErrMalformedEnvelope = errors.Wrap(errors.ErrAuthenticationFailure, "malformed envelope")

	// ErrDecryptionFailed indicates the authentication tag did not verify.
	ErrDecryptionFailed = errors.Wrap(errors.ErrAuthenticationFailure, "decryption failed")
)
