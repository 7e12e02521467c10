package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	auditDomain "github.com/allisson/sealedfields/internal/audit/domain"
	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
	"github.com/allisson/sealedfields/internal/database"
	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	deliveryService "github.com/allisson/sealedfields/internal/delivery/service"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

// Config holds queue processor configuration
type Config struct {
	BatchSize int
	ClaimTTL  time.Duration
}

// processorUseCase implements ProcessorUseCase
type processorUseCase struct {
	config       Config
	txManager    database.TxManager
	queueRepo    QueueRepository
	templateRepo TemplateRepository
	decrypter    RecipientDecrypter
	builder      *deliveryService.MessageBuilder
	mailer       deliveryService.Mailer
	audit        AuditLogger
	logger       *slog.Logger
	now          func() time.Time
}

// NewProcessorUseCase creates a new queue processor
func NewProcessorUseCase(
	config Config,
	txManager database.TxManager,
	queueRepo QueueRepository,
	templateRepo TemplateRepository,
	decrypter RecipientDecrypter,
	builder *deliveryService.MessageBuilder,
	mailer deliveryService.Mailer,
	audit AuditLogger,
	logger *slog.Logger,
) ProcessorUseCase {
	return &processorUseCase{
		config:       config,
		txManager:    txManager,
		queueRepo:    queueRepo,
		templateRepo: templateRepo,
		decrypter:    decrypter,
		builder:      builder,
		mailer:       mailer,
		audit:        audit,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// ProcessQueue claims a batch inside a short transaction, then delivers and
// updates each entry on its own. A claimed entry left behind by a crash becomes
// selectable again once its claim expires.
func (uc *processorUseCase) ProcessQueue(ctx context.Context) (*deliveryDomain.RunStats, error) {
	now := uc.now()

	var entries []*deliveryDomain.QueueEntry
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		entries, err = uc.queueRepo.ClaimDue(ctx, now, now.Add(uc.config.ClaimTTL), uc.config.BatchSize)
		return err
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to claim queue entries")
	}

	stats := &deliveryDomain.RunStats{Claimed: len(entries)}
	if len(entries) == 0 {
		return stats, nil
	}

	for _, entry := range entries {
		if uc.processEntry(ctx, entry) {
			stats.Sent++
		} else {
			stats.Failed++
		}
	}

	uc.logger.Info("delivery queue run completed",
		slog.Int("claimed", stats.Claimed),
		slog.Int("sent", stats.Sent),
		slog.Int("failed", stats.Failed),
	)

	return stats, nil
}

// processEntry delivers one entry and records its new state. It reports whether
// the entry was sent.
func (uc *processorUseCase) processEntry(ctx context.Context, entry *deliveryDomain.QueueEntry) bool {
	reason, err := uc.deliver(ctx, entry)
	sent := err == nil

	if sent {
		entry.MarkSent(uc.now())
		uc.recordAudit(ctx, auditDomain.CategoryDeliverySent,
			fmt.Sprintf("queue entry %s sent", entry.ID))
	} else {
		entry.MarkFailed(reason, uc.now())
		uc.logger.Warn("queue entry delivery failed",
			slog.String("entry_id", entry.ID.String()),
			slog.String("recipient_ref", cryptoDomain.Fingerprint(entry.Recipient)),
			slog.String("reason", reason),
			slog.Int("attempts", entry.Attempts),
			slog.Any("error", err),
		)
		uc.recordAudit(ctx, auditDomain.CategoryDeliveryFailed,
			fmt.Sprintf("queue entry %s failed: %s", entry.ID, reason))
	}

	if err := uc.queueRepo.Update(ctx, entry); err != nil {
		uc.logger.Error("failed to update queue entry",
			slog.String("entry_id", entry.ID.String()),
			slog.String("status", string(entry.Status)),
			slog.Any("error", err),
		)
	}

	return sent
}

// deliver decrypts, builds and sends. On failure it returns the fixed reason to
// store on the entry.
func (uc *processorUseCase) deliver(ctx context.Context, entry *deliveryDomain.QueueEntry) (string, error) {
	recipient, err := uc.decrypter.Decrypt(ctx, entry.Recipient)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrConfiguration) {
			return deliveryDomain.ReasonKeyUnavailable, err
		}
		return deliveryDomain.ReasonDecryptFailed, err
	}
	if recipient == entry.Recipient {
		return deliveryDomain.ReasonNotDecrypted, deliveryDomain.ErrRecipientNotDecrypted
	}

	template, err := uc.templateRepo.Get(ctx, entry.TemplateID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return deliveryDomain.ReasonTemplateNotFound, err
		}
		return deliveryDomain.ReasonInternal, err
	}

	message, err := uc.builder.Build(template, recipient, entry.ParticipantHash)
	if err != nil {
		return deliveryDomain.ReasonBuildFailed, err
	}

	if err := uc.mailer.Send(ctx, message); err != nil {
		return deliveryDomain.ReasonSendFailed, err
	}

	return "", nil
}

func (uc *processorUseCase) recordAudit(ctx context.Context, category, message string) {
	if err := uc.audit.Record(ctx, category, message); err != nil {
		uc.logger.Warn("failed to write audit entry",
			slog.String("category", category),
			slog.Any("error", err),
		)
	}
}
