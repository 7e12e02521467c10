// Package usecase implements the delivery queue processor and the outbound
// email intercept.
package usecase

import (
	"context"
	"time"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
)

// QueueRepository defines queue persistence.
type QueueRepository interface {
	// ClaimDue selects up to limit pending entries addressed to placeholders, due at
	// now and not under a live claim, oldest first, and stamps claimedUntil on them.
	// It must run inside a transaction.
	ClaimDue(ctx context.Context, now, claimedUntil time.Time, limit int) ([]*deliveryDomain.QueueEntry, error)
	// Update persists the delivery fields of entry.
	Update(ctx context.Context, entry *deliveryDomain.QueueEntry) error
}

// TemplateRepository defines message template lookup.
type TemplateRepository interface {
	Get(ctx context.Context, id int64) (*deliveryDomain.MessageTemplate, error)
}

// RecipientDecrypter turns a placeholder back into an address. Non-placeholders
// are returned unchanged.
type RecipientDecrypter interface {
	Decrypt(ctx context.Context, candidate string) (string, error)
}

// AuditLogger receives audit entries. Messages never carry addresses.
type AuditLogger interface {
	Record(ctx context.Context, category, message string) error
}

// ProcessorUseCase defines the delivery queue processor.
type ProcessorUseCase interface {
	// ProcessQueue claims one batch of due entries and delivers each independently.
	ProcessQueue(ctx context.Context) (*deliveryDomain.RunStats, error)
}

// InterceptUseCase defines the outbound email intercept.
type InterceptUseCase interface {
	// OnOutboundEmail sends email itself when any recipient is a placeholder and
	// reports whether the original send must be suppressed. On any error it fails
	// open: suppress is false and the error is returned for instrumentation only.
	OnOutboundEmail(ctx context.Context, email *deliveryDomain.OutboundEmail) (bool, error)
}
