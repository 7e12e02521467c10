// Package http provides HTTP handlers for the record save hook and the masked
// read surfaces. Nothing served here is ever decrypted.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/allisson/sealedfields/internal/httputil"
	"github.com/allisson/sealedfields/internal/record/http/dto"
	recordUseCase "github.com/allisson/sealedfields/internal/record/usecase"
	customValidation "github.com/allisson/sealedfields/internal/validation"
)

// RecordHandler handles HTTP requests for record operations.
type RecordHandler struct {
	recordUseCase recordUseCase.RecordUseCase
	logger        *slog.Logger
}

// NewRecordHandler creates a new record handler with required dependencies.
func NewRecordHandler(recordUseCase recordUseCase.RecordUseCase, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		recordUseCase: recordUseCase,
		logger:        logger,
	}
}

// RecordSavedHandler encrypts the tagged fields of a freshly saved record.
// POST /v1/hooks/record-saved - Requires the hook token.
// Returns 202 Accepted once the request is valid; encryption failures are only logged
// so the host platform's save is never blocked.
func (h *RecordHandler) RecordSavedHandler(c *gin.Context) {
	var req dto.RecordSavedRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// The write-back must finish even if the host platform hangs up. Encryption
	// failures are already logged and must not fail the platform's save.
	ctx := context.WithoutCancel(c.Request.Context())
	_ = h.recordUseCase.OnRecordSaved(ctx, req.Coordinate())

	c.JSON(http.StatusAccepted, dto.RecordSavedResponse{Status: "accepted"})
}

// FormHandler returns the masked values shown on the data entry form.
// GET /v1/projects/:project_id/records/:record/form?event_id=N&instance=N
func (h *RecordHandler) FormHandler(c *gin.Context) {
	query, err := parseCoordinateQuery(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	coord := query.Coordinate()
	values, err := h.recordUseCase.Form(c.Request.Context(), coord)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValuesToResponse(coord, values))
}

// SurveyHandler returns the masked values shown on the participant survey page.
// GET /v1/projects/:project_id/surveys/:record?event_id=N&instance=N
func (h *RecordHandler) SurveyHandler(c *gin.Context) {
	query, err := parseCoordinateQuery(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	coord := query.Coordinate()
	values, err := h.recordUseCase.Survey(c.Request.Context(), coord)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapValuesToResponse(coord, values))
}

// ReportHandler returns one page of masked report rows.
// GET /v1/projects/:project_id/report?offset=0&limit=50
func (h *RecordHandler) ReportHandler(c *gin.Context) {
	projectID, err := parseProjectID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	rows, err := h.recordUseCase.Report(c.Request.Context(), projectID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapRowsToReportResponse(rows))
}

func parseProjectID(c *gin.Context) (int64, error) {
	projectID, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil || projectID < 1 {
		return 0, fmt.Errorf("invalid project_id parameter: must be a positive integer")
	}
	return projectID, nil
}

func parseCoordinateQuery(c *gin.Context) (*dto.CoordinateQuery, error) {
	projectID, err := parseProjectID(c)
	if err != nil {
		return nil, err
	}

	eventID, err := strconv.ParseInt(c.DefaultQuery("event_id", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid event_id parameter: must be an integer")
	}

	instance, err := strconv.Atoi(c.DefaultQuery("instance", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid instance parameter: must be an integer")
	}

	query := &dto.CoordinateQuery{
		ProjectID: projectID,
		Record:    c.Param("record"),
		EventID:   eventID,
		Instance:  instance,
	}
	if err := query.Validate(); err != nil {
		return nil, customValidation.WrapValidationError(err)
	}
	return query, nil
}
