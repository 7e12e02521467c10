// Package repository implements delivery queue and message template persistence
// for PostgreSQL and MySQL.
package repository

import (
	"database/sql"
	"strings"
	"time"

	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// queueColumns is the column list shared by both dialects, in scan order.
const queueColumns = `id, project_id, record, event_id, instance, recipient, participant_hash,
	template_id, scheduled_at, status, failure_reason, sent_at, attempts, claimed_until, updated_at`

// placeholderPattern is a LIKE pattern matching recipients stored as placeholders.
var placeholderPattern = strings.ReplaceAll(cryptoDomain.PlaceholderPrefix, "_", `\_`) +
	"%@" + cryptoDomain.PlaceholderDomain

// queueRow holds the scan targets of one delivery_queue row. The id target is
// left to the caller because its column type differs per dialect.
type queueRow struct {
	entry         deliveryDomain.QueueEntry
	projectID     int64
	record        string
	eventID       int64
	instance      sql.NullInt64
	status        string
	failureReason sql.NullString
	sentAt        sql.NullTime
	claimedUntil  sql.NullTime
}

func (r *queueRow) targets(id any) []any {
	return []any{
		id,
		&r.projectID,
		&r.record,
		&r.eventID,
		&r.instance,
		&r.entry.Recipient,
		&r.entry.ParticipantHash,
		&r.entry.TemplateID,
		&r.entry.ScheduledAt,
		&r.status,
		&r.failureReason,
		&r.sentAt,
		&r.entry.Attempts,
		&r.claimedUntil,
		&r.entry.UpdatedAt,
	}
}

func (r *queueRow) toEntry() *deliveryDomain.QueueEntry {
	entry := r.entry
	entry.Coordinate = recordDomain.NewCoordinate(r.projectID, r.record, r.eventID, int(r.instance.Int64))
	entry.Status = deliveryDomain.QueueStatus(r.status)
	if r.failureReason.Valid {
		reason := r.failureReason.String
		entry.FailureReason = &reason
	}
	entry.SentAt = nullTimePtr(r.sentAt)
	entry.ClaimedUntil = nullTimePtr(r.claimedUntil)
	return &entry
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// updateArgs returns the mutable delivery fields in statement order.
func updateArgs(entry *deliveryDomain.QueueEntry) []any {
	var failureReason sql.NullString
	if entry.FailureReason != nil {
		failureReason = sql.NullString{String: *entry.FailureReason, Valid: true}
	}
	return []any{
		string(entry.Status),
		failureReason,
		timePtrNull(entry.SentAt),
		entry.Attempts,
		timePtrNull(entry.ClaimedUntil),
		entry.UpdatedAt,
	}
}

func timePtrNull(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
