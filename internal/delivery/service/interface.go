// Package service provides the delivery services: survey link resolution,
// message building and the mail transport.
package service

import (
	"context"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
)

// Mailer sends a message. Implementations must not log recipients or bodies.
type Mailer interface {
	Send(ctx context.Context, message *deliveryDomain.Message) error
}
