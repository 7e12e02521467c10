package domain

import (
	"github.com/allisson/sealedfields/internal/errors"
)

// Record-specific error definitions.
var (
	// ErrRecordNotFound indicates no values exist for the coordinate.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "record not found")

	// ErrInvalidCoordinate indicates a coordinate with missing parts.
	ErrInvalidCoordinate = errors.Wrap(errors.ErrInvalidInput, "invalid record coordinate")
)
