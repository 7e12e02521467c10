// Package mocks provides mock implementations of the delivery use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
)

// MockProcessorUseCase is a mock implementation of ProcessorUseCase for testing.
type MockProcessorUseCase struct {
	mock.Mock
}

// ProcessQueue mocks the ProcessQueue method of ProcessorUseCase.
func (m *MockProcessorUseCase) ProcessQueue(ctx context.Context) (*deliveryDomain.RunStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliveryDomain.RunStats), args.Error(1)
}
