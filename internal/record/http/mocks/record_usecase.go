// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	recordDomain "github.com/allisson/sealedfields/internal/record/domain"
)

// MockRecordUseCase is a mock implementation of RecordUseCase for testing.
type MockRecordUseCase struct {
	mock.Mock
}

func (m *MockRecordUseCase) TaggedFields(ctx context.Context, projectID int64) (recordDomain.TaggedFieldSet, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(recordDomain.TaggedFieldSet), args.Error(1)
}

func (m *MockRecordUseCase) EncryptRecord(
	ctx context.Context,
	coord recordDomain.Coordinate,
	tagged recordDomain.TaggedFieldSet,
) (*recordDomain.EncryptResult, error) {
	args := m.Called(ctx, coord, tagged)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordDomain.EncryptResult), args.Error(1)
}

func (m *MockRecordUseCase) EncryptCoordinate(
	ctx context.Context,
	coord recordDomain.Coordinate,
) (*recordDomain.EncryptResult, error) {
	args := m.Called(ctx, coord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recordDomain.EncryptResult), args.Error(1)
}

func (m *MockRecordUseCase) OnRecordSaved(ctx context.Context, coord recordDomain.Coordinate) error {
	args := m.Called(ctx, coord)
	return args.Error(0)
}

func (m *MockRecordUseCase) Form(ctx context.Context, coord recordDomain.Coordinate) (recordDomain.Values, error) {
	args := m.Called(ctx, coord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(recordDomain.Values), args.Error(1)
}

func (m *MockRecordUseCase) Survey(ctx context.Context, coord recordDomain.Coordinate) (recordDomain.Values, error) {
	args := m.Called(ctx, coord)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(recordDomain.Values), args.Error(1)
}

func (m *MockRecordUseCase) Report(
	ctx context.Context,
	projectID int64,
	offset, limit int,
) ([]*recordDomain.Row, error) {
	args := m.Called(ctx, projectID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recordDomain.Row), args.Error(1)
}

