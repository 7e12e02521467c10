package app

import (
	"fmt"

	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
	cryptoService "github.com/allisson/sealedfields/internal/crypto/service"
)

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// KeyProvider returns the encryption key provider. The key itself is read on
// every use, so a missing key only surfaces when something is encrypted or decrypted.
func (c *Container) KeyProvider() cryptoService.KeyProvider {
	c.keyProviderInit.Do(func() {
		c.keyProvider = c.initKeyProvider()
	})
	return c.keyProvider
}

// Codec returns the field codec.
func (c *Container) Codec() (*cryptoService.Codec, error) {
	var err error
	c.codecInit.Do(func() {
		c.codec, err = c.initCodec()
		if err != nil {
			c.initErrors["codec"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["codec"]; exists {
		return nil, storedErr
	}
	return c.codec, nil
}

// initKeyProvider picks the KMS-wrapped key when KMS_KEY_URI is set and the
// plain ENCRYPTION_KEY otherwise.
func (c *Container) initKeyProvider() cryptoService.KeyProvider {
	if c.config.KMSKeyURI != "" {
		return cryptoService.NewKMSKeyProvider(c.KMSService(), c.config.KMSKeyURI)
	}
	return cryptoService.NewEnvKeyProvider()
}

// initCodec creates the codec for the configured algorithm.
func (c *Container) initCodec() (*cryptoService.Codec, error) {
	algorithm, err := cryptoDomain.ParseAlgorithm(c.config.EncryptionAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid ENCRYPTION_ALGORITHM %q: %w", c.config.EncryptionAlgorithm, err)
	}

	return cryptoService.NewCodec(c.KeyProvider(), cryptoService.NewAEADManager(), algorithm), nil
}
