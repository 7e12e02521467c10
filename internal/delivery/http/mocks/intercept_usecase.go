// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
)

// MockInterceptUseCase is a mock implementation of InterceptUseCase for testing.
type MockInterceptUseCase struct {
	mock.Mock
}

// OnOutboundEmail mocks the OnOutboundEmail method of InterceptUseCase.
func (m *MockInterceptUseCase) OnOutboundEmail(
	ctx context.Context,
	email *deliveryDomain.OutboundEmail,
) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
