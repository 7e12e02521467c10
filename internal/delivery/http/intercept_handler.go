// Package http provides the HTTP handler for the outbound email hook.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/sealedfields/internal/delivery/http/dto"
	deliveryUseCase "github.com/allisson/sealedfields/internal/delivery/usecase"
	"github.com/allisson/sealedfields/internal/httputil"
	customValidation "github.com/allisson/sealedfields/internal/validation"
)

// InterceptHandler handles outbound email hook calls.
type InterceptHandler struct {
	interceptUseCase deliveryUseCase.InterceptUseCase
	logger           *slog.Logger
}

// NewInterceptHandler creates a new intercept handler with required dependencies.
func NewInterceptHandler(interceptUseCase deliveryUseCase.InterceptUseCase, logger *slog.Logger) *InterceptHandler {
	return &InterceptHandler{
		interceptUseCase: interceptUseCase,
		logger:           logger,
	}
}

// OutboundEmailHandler sends the email itself when a recipient is a placeholder.
// POST /v1/hooks/outbound-email - Requires the hook token.
// Returns 200 OK with {"suppress": true} when the host platform must drop its own send.
func (h *InterceptHandler) OutboundEmailHandler(c *gin.Context) {
	var req dto.OutboundEmailRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// A send in progress is not abandoned when the host platform hangs up. A failed
	// intercept was already logged; the platform just sends the original.
	ctx := context.WithoutCancel(c.Request.Context())
	suppress, _ := h.interceptUseCase.OnOutboundEmail(ctx, req.ToDomain())

	c.JSON(http.StatusOK, dto.OutboundEmailResponse{Suppress: suppress})
}
