// Package service provides the credential service protecting the hook endpoints.
//
// The host platform authenticates hook calls with a shared token. Only its Argon2id
// hash is configured on this side (HOOK_TOKEN_HASH).
package service

// HookTokenService defines operations for hook token generation and validation.
type HookTokenService interface {
	// GenerateToken creates a new cryptographically secure random token.
	// Returns both the plain text token (to be configured on the host platform) and
	// the hashed version (to be configured as HOOK_TOKEN_HASH).
	GenerateToken() (plainToken string, tokenHash string, err error)

	// HashToken hashes a plain text token with Argon2id.
	HashToken(plainToken string) (tokenHash string, err error)

	// CompareToken reports whether plainToken matches tokenHash.
	CompareToken(plainToken string, tokenHash string) bool
}
