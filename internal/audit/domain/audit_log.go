// Package domain defines the audit log entry.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit categories.
const (
	CategoryRecordEncrypt     = "record.encrypt"
	CategoryDeliverySent      = "delivery.sent"
	CategoryDeliveryFailed    = "delivery.failed"
	CategoryDeliveryIntercept = "delivery.intercept"
)

// AuditLog is one audit entry. Message names fields, coordinates and queue ids,
// never field values or key material.
type AuditLog struct {
	ID        uuid.UUID
	Category  string
	Message   string
	CreatedAt time.Time
}
