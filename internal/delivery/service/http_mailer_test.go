package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	apperrors "github.com/allisson/sealedfields/internal/errors"
)

func TestHTTPMailer_Send(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var received sendRequest
		var authHeader string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/messages", r.URL.Path)
			authHeader = r.Header.Get("Authorization")
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		mailer := NewHTTPMailer(HTTPMailerConfig{BaseURL: server.URL + "/", Token: "relay-token", Timeout: time.Second})

		err := mailer.Send(context.Background(), &deliveryDomain.Message{
			To:        []string{"p@uvic.ca"},
			CC:        []string{"cc@example.org"},
			From:      "study@example.org",
			Subject:   "Hello",
			Body:      "Body",
			ProjectID: 12,
		})

		require.NoError(t, err)
		assert.Equal(t, "Bearer relay-token", authHeader)
		assert.Equal(t, []string{"p@uvic.ca"}, received.To)
		assert.Equal(t, []string{"cc@example.org"}, received.CC)
		assert.Empty(t, received.BCC)
		assert.Equal(t, "study@example.org", received.From)
		assert.Equal(t, int64(12), received.ProjectID)
	})

	t.Run("Error_RelayRejects", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"invalid recipient p@uvic.ca"}`))
		}))
		defer server.Close()

		mailer := NewHTTPMailer(HTTPMailerConfig{BaseURL: server.URL})

		err := mailer.Send(context.Background(), &deliveryDomain.Message{To: []string{"p@uvic.ca"}})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrDelivery))
		assert.Contains(t, err.Error(), "422")
		assert.NotContains(t, err.Error(), "p@uvic.ca")
	})

	t.Run("Error_Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		mailer := NewHTTPMailer(HTTPMailerConfig{BaseURL: url, Timeout: time.Second})

		err := mailer.Send(context.Background(), &deliveryDomain.Message{To: []string{"p@uvic.ca"}})

		assert.True(t, apperrors.Is(err, apperrors.ErrDelivery))
	})

	t.Run("Error_NoRecipients", func(t *testing.T) {
		mailer := NewHTTPMailer(HTTPMailerConfig{BaseURL: "http://127.0.0.1:1"})

		err := mailer.Send(context.Background(), &deliveryDomain.Message{})

		assert.ErrorIs(t, err, deliveryDomain.ErrNoRecipients)
	})
}
