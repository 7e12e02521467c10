package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	cryptoDomain "github.com/allisson/sealedfields/internal/crypto/domain"
	"github.com/allisson/sealedfields/internal/database"
	apperrors "github.com/allisson/sealedfields/internal/errors"
	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
	recordService "github.com/allisson/sealedfields/internal/record/service"
)

// AuditCategoryEncrypt is the audit category of write-path encryptions.
const AuditCategoryEncrypt = "record.encrypt"

// recordUseCase implements RecordUseCase.
type recordUseCase struct {
	txManager    database.TxManager
	metadataRepo FieldMetadataRepository
	recordRepo   RecordRepository
	encrypter    FieldEncrypter
	guard        *recordService.ReentrancyGuard
	scanner      *recordService.TagScanner
	masker       *recordService.Masker
	audit        AuditLogger
	logger       *slog.Logger
}

// NewRecordUseCase creates a RecordUseCase.
func NewRecordUseCase(
	txManager database.TxManager,
	metadataRepo FieldMetadataRepository,
	recordRepo RecordRepository,
	encrypter FieldEncrypter,
	guard *recordService.ReentrancyGuard,
	scanner *recordService.TagScanner,
	masker *recordService.Masker,
	audit AuditLogger,
	logger *slog.Logger,
) RecordUseCase {
	return &recordUseCase{
		txManager:    txManager,
		metadataRepo: metadataRepo,
		recordRepo:   recordRepo,
		encrypter:    encrypter,
		guard:        guard,
		scanner:      scanner,
		masker:       masker,
		audit:        audit,
		logger:       logger,
	}
}

// TaggedFields computes the tagged field set of a project. Nothing is cached.
func (r *recordUseCase) TaggedFields(ctx context.Context, projectID int64) (recordDomain.TaggedFieldSet, error) {
	fields, err := r.metadataRepo.ListByProject(ctx, projectID)
	if err != nil {
		return recordDomain.TaggedFieldSet{}, apperrors.Wrap(err, "failed to load field metadata")
	}
	return r.scanner.Scan(fields), nil
}

// EncryptRecord encrypts the tagged values of coord and writes back only the changed fields.
func (r *recordUseCase) EncryptRecord(
	ctx context.Context,
	coord recordDomain.Coordinate,
	tagged recordDomain.TaggedFieldSet,
) (*recordDomain.EncryptResult, error) {
	if err := validateCoordinate(coord); err != nil {
		return nil, err
	}

	result := &recordDomain.EncryptResult{Coordinate: coord}

	release, ok := r.guard.Enter(coord)
	if !ok {
		result.Skipped = true
		return result, nil
	}
	defer release()

	if tagged.Len() == 0 {
		return result, nil
	}

	current, err := r.recordRepo.GetValues(ctx, coord, tagged.Names())
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to read record values")
	}

	changes := make(recordDomain.Values)
	for _, name := range tagged.Names() {
		value, ok := current[name]
		if !ok || value == "" || cryptoDomain.IsEncrypted(value) {
			continue
		}

		placeholder, err := r.encrypter.Encrypt(ctx, value)
		if err != nil {
			return nil, apperrors.Wrap(err, fmt.Sprintf("failed to encrypt field %s", name))
		}
		changes[name] = placeholder
		result.Encrypted = append(result.Encrypted, name)
	}

	if len(changes) == 0 {
		return result, nil
	}

	err = r.txManager.WithTx(ctx, func(ctx context.Context) error {
		rows, err := r.recordRepo.UpdateValues(ctx, coord, changes)
		if err != nil {
			return err
		}
		result.RowsAffected = rows
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to write record values")
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("record update affected no rows",
			slog.Int64("project_id", coord.ProjectID),
			slog.String("record", coord.Record),
			slog.Int64("event_id", coord.EventID),
			slog.Int("instance", coord.Instance),
			slog.Any("fields", result.Encrypted),
		)
	}

	message := fmt.Sprintf("encrypted fields [%s] at %s", strings.Join(result.Encrypted, ", "), coord)
	if err := r.audit.Record(ctx, AuditCategoryEncrypt, message); err != nil {
		r.logger.Warn("failed to write audit entry",
			slog.String("category", AuditCategoryEncrypt),
			slog.Any("error", err),
		)
	}

	return result, nil
}

// EncryptCoordinate computes the tagged fields of coord's project and encrypts coord.
func (r *recordUseCase) EncryptCoordinate(
	ctx context.Context,
	coord recordDomain.Coordinate,
) (*recordDomain.EncryptResult, error) {
	tagged, err := r.TaggedFields(ctx, coord.ProjectID)
	if err != nil {
		return nil, err
	}
	return r.EncryptRecord(ctx, coord, tagged)
}

// OnRecordSaved encrypts coord after a save and logs any failure. The error is
// returned for metrics only; callers answer the host platform regardless.
func (r *recordUseCase) OnRecordSaved(ctx context.Context, coord recordDomain.Coordinate) error {
	result, err := r.EncryptCoordinate(ctx, coord)
	if err != nil {
		r.logger.Error("failed to encrypt record",
			slog.Int64("project_id", coord.ProjectID),
			slog.String("record", coord.Record),
			slog.Int64("event_id", coord.EventID),
			slog.Int("instance", coord.Instance),
			slog.Any("error", err),
		)
		return err
	}

	if result.Skipped {
		r.logger.Debug("record encryption already in flight",
			slog.String("coordinate", coord.String()),
		)
		return nil
	}

	if result.Changed() {
		r.logger.Info("record encrypted",
			slog.String("coordinate", coord.String()),
			slog.Any("fields", result.Encrypted),
			slog.Int64("rows_affected", result.RowsAffected),
		)
	}
	return nil
}

// Form returns masked values for the data entry form.
func (r *recordUseCase) Form(ctx context.Context, coord recordDomain.Coordinate) (recordDomain.Values, error) {
	return r.maskedValues(ctx, coord)
}

// Survey returns masked values for the survey page.
func (r *recordUseCase) Survey(ctx context.Context, coord recordDomain.Coordinate) (recordDomain.Values, error) {
	return r.maskedValues(ctx, coord)
}

// Report returns masked rows of a project.
func (r *recordUseCase) Report(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*recordDomain.Row, error) {
	tagged, err := r.TaggedFields(ctx, projectID)
	if err != nil {
		return nil, err
	}

	rows, err := r.recordRepo.ListRows(ctx, projectID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list records")
	}

	return r.masker.MaskRows(rows, tagged), nil
}

func (r *recordUseCase) maskedValues(
	ctx context.Context,
	coord recordDomain.Coordinate,
) (recordDomain.Values, error) {
	if err := validateCoordinate(coord); err != nil {
		return nil, err
	}

	tagged, err := r.TaggedFields(ctx, coord.ProjectID)
	if err != nil {
		return nil, err
	}

	values, err := r.recordRepo.GetValues(ctx, coord, nil)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, recordDomain.ErrRecordNotFound
	}

	return r.masker.MaskValues(values, tagged), nil
}

func validateCoordinate(coord recordDomain.Coordinate) error {
	if coord.ProjectID <= 0 || coord.Record == "" || coord.EventID <= 0 {
		return recordDomain.ErrInvalidCoordinate
	}
	return nil
}
