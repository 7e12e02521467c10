package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

const sendPath = "/v1/messages"

// HTTPMailerConfig configures the HTTP mail relay client.
type HTTPMailerConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// HTTPMailer sends messages through an HTTP mail relay.
type HTTPMailer struct {
	client *resty.Client
}

type sendRequest struct {
	To        []string `json:"to"`
	CC        []string `json:"cc,omitempty"`
	BCC       []string `json:"bcc,omitempty"`
	From      string   `json:"from"`
	Subject   string   `json:"subject"`
	Body      string   `json:"body"`
	ProjectID int64    `json:"project_id,omitempty"`
}

// NewHTTPMailer creates an HTTPMailer.
func NewHTTPMailer(cfg HTTPMailerConfig) *HTTPMailer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}

	return &HTTPMailer{client: client}
}

// Send posts message to the relay. Errors carry the status code only: relay
// response bodies may echo recipients.
func (m *HTTPMailer) Send(ctx context.Context, message *deliveryDomain.Message) error {
	if len(message.To) == 0 {
		return deliveryDomain.ErrNoRecipients
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(sendRequest{
			To:        message.To,
			CC:        message.CC,
			BCC:       message.BCC,
			From:      message.From,
			Subject:   message.Subject,
			Body:      message.Body,
			ProjectID: message.ProjectID,
		}).
		Post(sendPath)
	if err != nil {
		return apperrors.WrapAs(err, apperrors.ErrDelivery, "mail relay request failed")
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return apperrors.Wrap(deliveryDomain.ErrRelayRejected, fmt.Sprintf("http %d", resp.StatusCode()))
	}

	return nil
}
