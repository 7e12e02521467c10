package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/sealedfields/internal/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		statusCode   int
		errorCode    string
		hiddenDetail string
	}{
		{
			name:       "not found",
			err:        apperrors.Wrap(apperrors.ErrNotFound, "template not found"),
			statusCode: http.StatusNotFound,
			errorCode:  "not_found",
		},
		{
			name:       "invalid input",
			err:        apperrors.Wrap(apperrors.ErrInvalidInput, "record is required"),
			statusCode: http.StatusUnprocessableEntity,
			errorCode:  "invalid_input",
		},
		{
			name:       "unauthorized",
			err:        apperrors.ErrUnauthorized,
			statusCode: http.StatusUnauthorized,
			errorCode:  "unauthorized",
		},
		{
			name:         "configuration",
			err:          apperrors.Wrap(apperrors.ErrConfiguration, "ENCRYPTION_KEY not set"),
			statusCode:   http.StatusServiceUnavailable,
			errorCode:    "not_configured",
			hiddenDetail: "ENCRYPTION_KEY",
		},
		{
			name:         "delivery",
			err:          apperrors.WrapAs(errors.New("relay said: p@uvic.ca rejected"), apperrors.ErrDelivery, "send failed"),
			statusCode:   http.StatusBadGateway,
			errorCode:    "delivery_failed",
			hiddenDetail: "p@uvic.ca",
		},
		{
			name:         "authentication failure",
			err:          apperrors.Wrap(apperrors.ErrAuthenticationFailure, "tag mismatch"),
			statusCode:   http.StatusInternalServerError,
			errorCode:    "internal_error",
			hiddenDetail: "tag mismatch",
		},
		{
			name:         "storage",
			err:          apperrors.WrapAs(errors.New("connection refused"), apperrors.ErrStorage, "failed to read record"),
			statusCode:   http.StatusInternalServerError,
			errorCode:    "internal_error",
			hiddenDetail: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.statusCode, w.Code)
			assert.Contains(t, w.Body.String(), `"error":"`+tt.errorCode+`"`)
			if tt.hiddenDetail != "" {
				assert.NotContains(t, w.Body.String(), tt.hiddenDetail)
			}
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := newTestContext()

	HandleErrorGin(c, nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()

	HandleBadRequestGin(c, errors.New("invalid character 'x'"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"bad_request","message":"invalid character 'x'"}`, w.Body.String())
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()

	HandleValidationErrorGin(c, errors.New("record: cannot be blank."), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"validation_error","message":"record: cannot be blank."}`, w.Body.String())
}
