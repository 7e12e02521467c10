package service

import (
	"html"
	"strings"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
)

// MessageBuilder renders a template for one participant.
type MessageBuilder struct {
	links *SurveyLinkResolver
}

// NewMessageBuilder creates a MessageBuilder.
func NewMessageBuilder(links *SurveyLinkResolver) *MessageBuilder {
	return &MessageBuilder{links: links}
}

// Build substitutes the link tokens in the template body and addresses the
// message to recipient.
func (b *MessageBuilder) Build(
	template *deliveryDomain.MessageTemplate,
	recipient string,
	participantHash string,
) (*deliveryDomain.Message, error) {
	if strings.TrimSpace(recipient) == "" {
		return nil, deliveryDomain.ErrNoRecipients
	}

	link := b.links.URL(participantHash)
	escaped := html.EscapeString(link)
	replacer := strings.NewReplacer(
		deliveryDomain.TokenSurveyLink, `<a href="`+escaped+`">`+escaped+`</a>`,
		deliveryDomain.TokenSurveyURL, link,
	)

	return &deliveryDomain.Message{
		To:        []string{recipient},
		From:      template.Sender,
		Subject:   template.Subject,
		Body:      replacer.Replace(template.Body),
		ProjectID: template.ProjectID,
	}, nil
}
