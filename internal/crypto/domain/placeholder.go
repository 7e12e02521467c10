package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const (
	// PlaceholderPrefix starts every placeholder.
	PlaceholderPrefix = "ENC_"

	// PlaceholderDomain is the non-routable pseudo-domain ending every placeholder.
	PlaceholderDomain = "xx.xx"

	placeholderSuffix = "@" + PlaceholderDomain

	fingerprintLength = 12
)

// IsEncrypted reports whether value has the placeholder shape:
// PlaceholderPrefix, a non-empty payload, "@" and PlaceholderDomain.
//
// It performs no cryptographic work and is the only encryption test used by the
// write path, masking, the queue filter and the outbound intercept.
func IsEncrypted(value string) bool {
	return len(value) > len(PlaceholderPrefix)+len(placeholderSuffix) &&
		strings.HasPrefix(value, PlaceholderPrefix) &&
		strings.HasSuffix(value, placeholderSuffix)
}

// NewPlaceholder wraps an encoded payload into the placeholder form.
func NewPlaceholder(payload string) string {
	return PlaceholderPrefix + payload + placeholderSuffix
}

// PlaceholderPayload returns the encoded payload of a placeholder.
// ok is false exactly when IsEncrypted(value) is false.
func PlaceholderPayload(value string) (payload string, ok bool) {
	if !IsEncrypted(value) {
		return "", false
	}
	return value[len(PlaceholderPrefix) : len(value)-len(placeholderSuffix)], true
}

// Fingerprint returns a short, non-reversible fragment of value suitable for
// correlating log lines about the same placeholder.
func Fingerprint(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])[:fingerprintLength]
}
