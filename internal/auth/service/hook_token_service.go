package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"sync"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/sealedfields/internal/errors"
)

// hookTokenService implements HookTokenService using Argon2id for hashing.
//
// Hooks fire on every record save, so a verified token is remembered by its
// SHA-256 digest per hash and later calls skip the Argon2id work.
type hookTokenService struct {
	hasher *pwdhash.PasswordHasher

	mu       sync.RWMutex
	verified map[string][sha256.Size]byte
}

// GenerateToken creates a new 32-byte random token encoded as base64url.
func (s *hookTokenService) GenerateToken() (plainToken string, tokenHash string, err error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random token")
	}

	plainToken = base64.RawURLEncoding.EncodeToString(randomBytes)

	tokenHash, err = s.HashToken(plainToken)
	if err != nil {
		return "", "", err
	}

	return plainToken, tokenHash, nil
}

// HashToken hashes a plain text token using Argon2id.
func (s *hookTokenService) HashToken(plainToken string) (string, error) {
	tokenHash, err := s.hasher.Hash([]byte(plainToken))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash token")
	}
	return tokenHash, nil
}

// CompareToken checks plainToken against tokenHash. Empty tokens and hashes never match.
func (s *hookTokenService) CompareToken(plainToken string, tokenHash string) bool {
	if plainToken == "" || tokenHash == "" {
		return false
	}

	digest := sha256.Sum256([]byte(plainToken))

	s.mu.RLock()
	known, ok := s.verified[tokenHash]
	s.mu.RUnlock()
	if ok {
		return subtle.ConstantTimeCompare(known[:], digest[:]) == 1
	}

	matches, err := s.hasher.Verify([]byte(plainToken), tokenHash)
	if err != nil || !matches {
		return false
	}

	s.mu.Lock()
	s.verified[tokenHash] = digest
	s.mu.Unlock()

	return true
}

// NewHookTokenService creates a new HookTokenService using the Moderate Argon2id policy.
func NewHookTokenService() HookTokenService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &hookTokenService{
		hasher:   hasher,
		verified: make(map[string][sha256.Size]byte),
	}
}
