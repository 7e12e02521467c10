// Package usecase implements the record write path (encrypt once, guarded against
// reentry) and the masked read surfaces.
package usecase

import (
	"context"

	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// FieldMetadataRepository looks up field definitions of a project.
type FieldMetadataRepository interface {
	ListByProject(ctx context.Context, projectID int64) ([]*recordDomain.FieldMetadata, error)
}

// RecordRepository reads and writes stored field values.
type RecordRepository interface {
	// GetValues returns the stored values of fields for coord in a single read.
	// Absent fields are missing from the result. A nil fields slice reads every field.
	GetValues(ctx context.Context, coord recordDomain.Coordinate, fields []string) (recordDomain.Values, error)
	// UpdateValues writes values for exactly coord and returns the rows affected.
	UpdateValues(ctx context.Context, coord recordDomain.Coordinate, values recordDomain.Values) (int64, error)
	// ListRows returns stored rows of a project ordered by record, event and instance.
	ListRows(ctx context.Context, projectID int64, offset, limit int) ([]*recordDomain.Row, error)
}

// FieldEncrypter turns a plaintext value into a placeholder.
type FieldEncrypter interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
}

// AuditLogger receives audit entries. Messages never carry field values.
type AuditLogger interface {
	Record(ctx context.Context, category, message string) error
}

// RecordUseCase defines the record operations.
type RecordUseCase interface {
	// TaggedFields computes the tagged field set of a project from current metadata.
	TaggedFields(ctx context.Context, projectID int64) (recordDomain.TaggedFieldSet, error)
	// EncryptRecord encrypts every tagged, non-empty, not yet encrypted value of coord.
	// A nested call for a coordinate already in flight returns a Skipped result.
	EncryptRecord(
		ctx context.Context,
		coord recordDomain.Coordinate,
		tagged recordDomain.TaggedFieldSet,
	) (*recordDomain.EncryptResult, error)
	// EncryptCoordinate looks up the tagged fields of the project and calls EncryptRecord.
	EncryptCoordinate(ctx context.Context, coord recordDomain.Coordinate) (*recordDomain.EncryptResult, error)
	// OnRecordSaved is the save-event boundary: it runs EncryptCoordinate and logs failures.
	// The returned error is for instrumentation; the save flow must not act on it.
	OnRecordSaved(ctx context.Context, coord recordDomain.Coordinate) error
	// Form returns the masked values of coord for the data entry form.
	Form(ctx context.Context, coord recordDomain.Coordinate) (recordDomain.Values, error)
	// Survey returns the masked values of coord for the participant-facing survey page.
	Survey(ctx context.Context, coord recordDomain.Coordinate) (recordDomain.Values, error)
	// Report returns masked rows of a project.
	Report(ctx context.Context, projectID int64, offset, limit int) ([]*recordDomain.Row, error)
}
