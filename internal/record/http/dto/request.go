// Package dto provides data transfer objects for the record endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
	customValidation "github.com/allisson/sealedfields/internal/validation"
)

// RecordSavedRequest is the payload the host platform posts after a record save.
type RecordSavedRequest struct {
	ProjectID int64  `json:"project_id"`
	Record    string `json:"record"`
	EventID   int64  `json:"event_id"`
	Instance  int    `json:"instance"`
}

// Validate checks if the record saved request is valid.
func (r *RecordSavedRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ProjectID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Record, validation.Required, customValidation.RecordID),
		validation.Field(&r.EventID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Instance, validation.Min(0)),
	)
}

// Coordinate converts the request into a record coordinate.
func (r *RecordSavedRequest) Coordinate() recordDomain.Coordinate {
	return recordDomain.NewCoordinate(r.ProjectID, r.Record, r.EventID, r.Instance)
}

// CoordinateQuery carries the coordinate parts of the form and survey URLs.
type CoordinateQuery struct {
	ProjectID int64
	Record    string
	EventID   int64
	Instance  int
}

// Validate checks if the coordinate query is valid.
func (q *CoordinateQuery) Validate() error {
	return validation.ValidateStruct(q,
		validation.Field(&q.ProjectID, validation.Required, validation.Min(int64(1))),
		validation.Field(&q.Record, validation.Required, customValidation.RecordID),
		validation.Field(&q.EventID, validation.Required, validation.Min(int64(1))),
		validation.Field(&q.Instance, validation.Min(0)),
	)
}

// Coordinate converts the query into a record coordinate.
func (q *CoordinateQuery) Coordinate() recordDomain.Coordinate {
	return recordDomain.NewCoordinate(q.ProjectID, q.Record, q.EventID, q.Instance)
}
