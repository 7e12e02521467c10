// Package dto provides data transfer objects for the delivery endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
)

// OutboundEmailRequest describes an email the host platform is about to send.
// Recipient fields may hold ';' or ',' separated lists.
type OutboundEmailRequest struct {
	ProjectID int64  `json:"project_id"`
	To        string `json:"to"`
	CC        string `json:"cc"`
	BCC       string `json:"bcc"`
	From      string `json:"from"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// Validate checks if the outbound email request is valid. Recipient syntax is
// left alone: anything odd simply isn't a placeholder.
func (r *OutboundEmailRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProjectID, validation.Min(int64(0))),
		validation.Field(&r.To, validation.Required),
	)
}

// ToDomain converts the request into an outbound email.
func (r *OutboundEmailRequest) ToDomain() *deliveryDomain.OutboundEmail {
	return &deliveryDomain.OutboundEmail{
		To:        r.To,
		CC:        r.CC,
		BCC:       r.BCC,
		From:      r.From,
		Subject:   r.Subject,
		Body:      r.Body,
		ProjectID: r.ProjectID,
	}
}
