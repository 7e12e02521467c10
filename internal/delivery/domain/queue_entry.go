// Package domain defines the delivery queue entry, its state machine and the
// messages handed to the mail transport.
package domain

import (
	"time"

	"github.com/google/uuid"

	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// QueueStatus is the delivery state of a queue entry.
type QueueStatus string

const (
	StatusQueued          QueueStatus = "QUEUED"
	StatusSent            QueueStatus = "SENT"
	StatusFailedRetryable QueueStatus = "FAILED_RETRYABLE"
)

// Pending reports whether entries in this status are eligible for delivery.
func (s QueueStatus) Pending() bool {
	return s == StatusQueued || s == StatusFailedRetryable
}

// Failure reasons stored on FAILED_RETRYABLE entries. They are fixed strings so
// that no recipient, plaintext or ciphertext ever reaches the queue table.
const (
	ReasonKeyUnavailable   = "encryption key unavailable"
	ReasonDecryptFailed    = "recipient could not be decrypted"
	ReasonNotDecrypted     = "recipient did not decrypt to an address"
	ReasonTemplateNotFound = "message template not found"
	ReasonBuildFailed      = "message could not be built"
	ReasonSendFailed       = "mail relay rejected the message"
	ReasonInternal         = "internal error"
)

// QueueEntry is one scheduled outbound message. It is created by the external
// scheduler and only its delivery fields are mutated here.
type QueueEntry struct {
	ID              uuid.UUID
	Coordinate      recordDomain.Coordinate
	Recipient       string
	ParticipantHash string
	TemplateID      int64
	ScheduledAt     time.Time
	Status          QueueStatus
	FailureReason   *string
	SentAt          *time.Time
	Attempts        int
	ClaimedUntil    *time.Time
	UpdatedAt       time.Time
}

// MarkSent moves the entry to SENT and releases its claim.
func (e *QueueEntry) MarkSent(now time.Time) {
	e.Status = StatusSent
	e.SentAt = &now
	e.FailureReason = nil
	e.ClaimedUntil = nil
	e.UpdatedAt = now
}

// MarkFailed moves the entry to FAILED_RETRYABLE, counts the attempt and
// releases its claim so the next run picks it up again.
func (e *QueueEntry) MarkFailed(reason string, now time.Time) {
	if reason == "" {
		reason = ReasonInternal
	}
	e.Status = StatusFailedRetryable
	e.FailureReason = &reason
	e.Attempts++
	e.ClaimedUntil = nil
	e.UpdatedAt = now
}
