package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
	cryptoService "github.com/allisson/sealedfields/internal/crypto/service"
)

// RunCreateEncryptionKey generates a 32-byte field encryption key and prints it as
// environment variables. Key material is zeroed from memory after encoding.
//
// Without kmsKeyURI the key is printed in the clear as ENCRYPTION_KEY. With a KMS key
// URI (base64key://, gcpkms://, awskms://, azurekeyvault://, hashivault://) it is
// wrapped first and printed as ENCRYPTION_KEY_CIPHERTEXT together with KMS_KEY_URI.
func RunCreateEncryptionKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	kmsKeyURI string,
) error {
	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}
	defer func() {
		for i := range key {
			key[i] = 0
		}
	}()

	if kmsKeyURI == "" {
		logger.Warn("printing an unwrapped encryption key, prefer --kms-key-uri in production")

		_, _ = fmt.Fprintln(writer, "# Field encryption key")
		_, _ = fmt.Fprintln(writer, "# Copy this environment variable to your .env file or secrets manager")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintf(writer, "%s=\"%s\"\n", cryptoService.EnvEncryptionKey, base64.StdEncoding.EncodeToString(key))
		return nil
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to encrypt key with KMS: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "# Field encryption key (KMS mode)")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(
		writer,
		"%s=\"%s\"\n",
		cryptoService.EnvEncryptionKeyCiphertext,
		base64.StdEncoding.EncodeToString(ciphertext),
	)

	logger.Info("encryption key created", slog.Bool("kms", true))
	return nil
}
