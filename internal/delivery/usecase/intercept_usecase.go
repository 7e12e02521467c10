package usecase

import (
	"context"
	"fmt"
	"log/slog"

	auditDomain "github.com/allisson/sealedfields/internal/audit/domain"
	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	deliveryService "github.com/allisson/sealedfields/internal/delivery/service"
	apperrors "github.com/allisson/sealedfields/internal/errors"
	"github.com/allisson/sealedfields/internal/validation"
)

// interceptUseCase implements InterceptUseCase. Every message is handled on its
// own; nothing is shared between calls.
type interceptUseCase struct {
	decrypter RecipientDecrypter
	mailer    deliveryService.Mailer
	audit     AuditLogger
	logger    *slog.Logger
}

// NewInterceptUseCase creates a new outbound email intercept.
func NewInterceptUseCase(
	decrypter RecipientDecrypter,
	mailer deliveryService.Mailer,
	audit AuditLogger,
	logger *slog.Logger,
) InterceptUseCase {
	return &interceptUseCase{
		decrypter: decrypter,
		mailer:    mailer,
		audit:     audit,
		logger:    logger,
	}
}

// OnOutboundEmail is the hook boundary: errors are logged and never suppress the
// original send.
func (uc *interceptUseCase) OnOutboundEmail(
	ctx context.Context,
	email *deliveryDomain.OutboundEmail,
) (bool, error) {
	suppress, err := uc.intercept(ctx, email)
	if err != nil {
		uc.logger.Error("outbound email intercept failed, letting original send proceed",
			slog.Int64("project_id", email.ProjectID),
			slog.Any("error", err),
		)
		return false, err
	}
	return suppress, nil
}

func (uc *interceptUseCase) intercept(ctx context.Context, email *deliveryDomain.OutboundEmail) (bool, error) {
	substituted := 0

	to, n, err := uc.decryptList(ctx, email.To)
	if err != nil {
		return false, err
	}
	substituted += n

	cc, n, err := uc.decryptList(ctx, email.CC)
	if err != nil {
		return false, err
	}
	substituted += n

	bcc, n, err := uc.decryptList(ctx, email.BCC)
	if err != nil {
		return false, err
	}
	substituted += n

	if substituted == 0 {
		return false, nil
	}

	message := &deliveryDomain.Message{
		To:        to,
		CC:        cc,
		BCC:       bcc,
		From:      email.From,
		Subject:   email.Subject,
		Body:      email.Body,
		ProjectID: email.ProjectID,
	}
	if err := uc.mailer.Send(ctx, message); err != nil {
		return false, apperrors.Wrap(err, "failed to send intercepted email")
	}

	uc.logger.Info("outbound email intercepted",
		slog.Int64("project_id", email.ProjectID),
		slog.Int("substituted", substituted),
	)
	auditMessage := fmt.Sprintf("intercepted outbound email for project %d, %d recipient(s) substituted", email.ProjectID, substituted)
	if err := uc.audit.Record(ctx, auditDomain.CategoryDeliveryIntercept, auditMessage); err != nil {
		uc.logger.Warn("failed to write audit entry",
			slog.String("category", auditDomain.CategoryDeliveryIntercept),
			slog.Any("error", err),
		)
	}

	return true, nil
}

// decryptList splits a recipient header and decrypts each placeholder element.
// It returns the resulting list and how many elements were substituted.
func (uc *interceptUseCase) decryptList(ctx context.Context, header string) ([]string, int, error) {
	parts := validation.SplitRecipients(header)
	substituted := 0

	for i, part := range parts {
		if !cryptoDomain.IsEncrypted(part) {
			continue
		}
		plaintext, err := uc.decrypter.Decrypt(ctx, part)
		if err != nil {
			return nil, 0, apperrors.Wrap(err, fmt.Sprintf("failed to decrypt recipient %s", cryptoDomain.Fingerprint(part)))
		}
		if plaintext == part {
			return nil, 0, deliveryDomain.ErrRecipientNotDecrypted
		}
		parts[i] = plaintext
		substituted++
	}

	return parts, substituted, nil
}
