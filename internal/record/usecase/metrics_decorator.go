package usecase

import (
	"context"
	"time"

	"github.com/allisson/sealedfields/internal/metrics"
	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// recordUseCaseWithMetrics decorates RecordUseCase with metrics instrumentation.
type recordUseCaseWithMetrics struct {
	next    RecordUseCase
	metrics metrics.BusinessMetrics
}

// NewRecordUseCaseWithMetrics wraps a RecordUseCase with metrics recording.
func NewRecordUseCaseWithMetrics(useCase RecordUseCase, m metrics.BusinessMetrics) RecordUseCase {
	return &recordUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *recordUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	r.metrics.RecordOperation(ctx, "record", operation, status)
	r.metrics.RecordDuration(ctx, "record", operation, time.Since(start), status)
}

// TaggedFields delegates without recording metrics.
func (r *recordUseCaseWithMetrics) TaggedFields(
	ctx context.Context,
	projectID int64,
) (recordDomain.TaggedFieldSet, error) {
	return r.next.TaggedFields(ctx, projectID)
}

// EncryptRecord records metrics for record encryption.
func (r *recordUseCaseWithMetrics) EncryptRecord(
	ctx context.Context,
	coord recordDomain.Coordinate,
	tagged recordDomain.TaggedFieldSet,
) (*recordDomain.EncryptResult, error) {
	start := time.Now()
	result, err := r.next.EncryptRecord(ctx, coord, tagged)
	r.record(ctx, "encrypt", start, err)
	return result, err
}

// EncryptCoordinate records metrics for record encryption with metadata lookup.
func (r *recordUseCaseWithMetrics) EncryptCoordinate(
	ctx context.Context,
	coord recordDomain.Coordinate,
) (*recordDomain.EncryptResult, error) {
	start := time.Now()
	result, err := r.next.EncryptCoordinate(ctx, coord)
	r.record(ctx, "encrypt", start, err)
	return result, err
}

// OnRecordSaved records the save hook as an encrypt operation, since the wrapped
// use case encrypts without going back through the decorator.
func (r *recordUseCaseWithMetrics) OnRecordSaved(ctx context.Context, coord recordDomain.Coordinate) error {
	start := time.Now()
	err := r.next.OnRecordSaved(ctx, coord)
	r.record(ctx, "encrypt", start, err)
	return err
}

// Form records metrics for the form read surface.
func (r *recordUseCaseWithMetrics) Form(
	ctx context.Context,
	coord recordDomain.Coordinate,
) (recordDomain.Values, error) {
	start := time.Now()
	values, err := r.next.Form(ctx, coord)
	r.record(ctx, "form", start, err)
	return values, err
}

// Survey records metrics for the survey read surface.
func (r *recordUseCaseWithMetrics) Survey(
	ctx context.Context,
	coord recordDomain.Coordinate,
) (recordDomain.Values, error) {
	start := time.Now()
	values, err := r.next.Survey(ctx, coord)
	r.record(ctx, "survey", start, err)
	return values, err
}

// Report records metrics for the report read surface.
func (r *recordUseCaseWithMetrics) Report(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*recordDomain.Row, error) {
	start := time.Now()
	rows, err := r.next.Report(ctx, projectID, offset, limit)
	r.record(ctx, "report", start, err)
	return rows, err
}
