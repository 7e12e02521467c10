package service

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSSchemes lists the key URI schemes with a registered driver.
var KMSSchemes = []string{"awskms", "azurekeyvault", "gcpkms", "hashivault", "base64key"}

// KMSService opens keepers for wrapped encryption keys.
type KMSService interface {
	// OpenKeeper opens a keeper for keyURI (gcpkms://, awskms://, azurekeyvault://,
	// hashivault://, base64key://).
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}

type kmsService struct{}

// NewKMSService creates a KMSService backed by gocloud.dev/secrets.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper checks the URI scheme before handing keyURI to gocloud. Errors for
// base64key:// URIs drop the driver message since the URI carries the key itself.
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	parsed, err := url.Parse(keyURI)
	if err != nil || !slices.Contains(KMSSchemes, parsed.Scheme) {
		return nil, apperrors.Wrap(
			apperrors.ErrConfiguration,
			fmt.Sprintf("unsupported KMS key URI, expected one of %v", KMSSchemes),
		)
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		if parsed.Scheme == "base64key" {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, "failed to open KMS keeper: malformed base64key URI")
		}
		return nil, apperrors.WrapAs(err, apperrors.ErrConfiguration, "failed to open KMS keeper")
	}
	return keeper, nil
}
