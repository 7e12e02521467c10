package domain

import (
	"github.com/allisson/sealedfields/internal/errors"
)

// Delivery error definitions.
var (
	// ErrTemplateNotFound indicates the queue entry references an unknown template.
	ErrTemplateNotFound = errors.Wrap(errors.ErrNotFound, "message template not found")

	// ErrQueueEntryNotFound indicates an update targeted an entry that no longer exists.
	ErrQueueEntryNotFound = errors.Wrap(errors.ErrNotFound, "queue entry not found")

	// ErrRecipientNotDecrypted indicates decryption returned the candidate unchanged.
	ErrRecipientNotDecrypted = errors.Wrap(errors.ErrAuthenticationFailure, "recipient was not decrypted")

	// ErrNoRecipients indicates a message without any recipient.
	ErrNoRecipients = errors.Wrap(errors.ErrInvalidInput, "message has no recipients")

	// ErrRelayRejected indicates the mail relay answered with a non-success status.
	ErrRelayRejected = errors.Wrap(errors.ErrDelivery, "mail relay rejected the message")
)
