package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

// Environment variables holding key material.
const (
	EnvEncryptionKey           = "ENCRYPTION_KEY"
	EnvEncryptionKeyCiphertext = "ENCRYPTION_KEY_CIPHERTEXT"
)

// envKeyProvider reads a base64 key from the environment on every call.
type envKeyProvider struct {
	variable string
}

// NewEnvKeyProvider returns a KeyProvider backed by ENCRYPTION_KEY.
func NewEnvKeyProvider() KeyProvider {
	return &envKeyProvider{variable: EnvEncryptionKey}
}

// Key decodes and validates the configured key.
func (p *envKeyProvider) Key(ctx context.Context) ([]byte, error) {
	raw := strings.TrimSpace(os.Getenv(p.variable))
	if raw == "" {
		return nil, cryptoDomain.ErrKeyNotSet
	}

	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidKeyEncoding
	}

	return checkKeySize(key)
}

// kmsKeyProvider unwraps ENCRYPTION_KEY_CIPHERTEXT through a KMS keeper on every call.
type kmsKeyProvider struct {
	kmsService KMSService
	keyURI     string
	variable   string
}

// NewKMSKeyProvider returns a KeyProvider that unwraps a KMS-encrypted key with keyURI.
func NewKMSKeyProvider(kmsService KMSService, keyURI string) KeyProvider {
	return &kmsKeyProvider{
		kmsService: kmsService,
		keyURI:     keyURI,
		variable:   EnvEncryptionKeyCiphertext,
	}
}

// Key opens the keeper, unwraps the key and closes the keeper again.
func (p *kmsKeyProvider) Key(ctx context.Context) ([]byte, error) {
	raw := strings.TrimSpace(os.Getenv(p.variable))
	if raw == "" {
		return nil, cryptoDomain.ErrKeyNotSet
	}

	wrapped, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidKeyEncoding
	}

	keeper, err := p.kmsService.OpenKeeper(ctx, p.keyURI)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, err.Error())
	}
	defer func() {
		_ = keeper.Close()
	}()

	key, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, fmt.Sprintf("failed to unwrap encryption key: %v", err))
	}

	return checkKeySize(key)
}

func checkKeySize(key []byte) ([]byte, error) {
	if len(key) != cryptoDomain.KeySize {
		size := len(key)
		cryptoDomain.Zero(key)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", cryptoDomain.ErrInvalidKeySize, size, cryptoDomain.KeySize)
	}
	return key, nil
}
