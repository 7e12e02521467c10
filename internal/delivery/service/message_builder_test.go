package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

func TestMessageBuilder_Build(t *testing.T) {
	builder := NewMessageBuilder(NewSurveyLinkResolver("https://surveys.example.org/"))
	template := &deliveryDomain.MessageTemplate{
		ID:        3,
		ProjectID: 12,
		Sender:    "study@example.org",
		Subject:   "Your follow-up survey",
		Body:      "Click [survey-link] or paste [survey-url] into your browser. [survey-url]",
	}

	message, err := builder.Build(template, "p@uvic.ca", "Q7kP")

	require.NoError(t, err)
	assert.Equal(t, []string{"p@uvic.ca"}, message.To)
	assert.Equal(t, "study@example.org", message.From)
	assert.Equal(t, "Your follow-up survey", message.Subject)
	assert.Equal(t, int64(12), message.ProjectID)
	assert.Equal(t,
		`Click <a href="https://surveys.example.org/?s=Q7kP">https://surveys.example.org/?s=Q7kP</a> `+
			`or paste https://surveys.example.org/?s=Q7kP into your browser. https://surveys.example.org/?s=Q7kP`,
		message.Body,
	)
}

func TestMessageBuilder_EscapesAnchor(t *testing.T) {
	builder := NewMessageBuilder(NewSurveyLinkResolver("https://surveys.example.org/?pid=1"))
	template := &deliveryDomain.MessageTemplate{Body: "[survey-link]"}

	message, err := builder.Build(template, "p@uvic.ca", "h")

	require.NoError(t, err)
	assert.Equal(t, `<a href="https://surveys.example.org/?pid=1&amp;s=h">https://surveys.example.org/?pid=1&amp;s=h</a>`, message.Body)
}

func TestMessageBuilder_NoRecipient(t *testing.T) {
	builder := NewMessageBuilder(NewSurveyLinkResolver("https://surveys.example.org/"))

	_, err := builder.Build(&deliveryDomain.MessageTemplate{}, "  ", "h")

	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
}
