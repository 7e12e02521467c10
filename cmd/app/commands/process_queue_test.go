package commands

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	deliveryDomain "github.com/allisson/sealedfields/internal/delivery/domain"
	deliveryMocks "github.com/allisson/sealedfields/internal/delivery/usecase/mocks"
)

func TestRunProcessQueue(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("text-output", func(t *testing.T) {
		mockProcessor := &deliveryMocks.MockProcessorUseCase{}
		mockProcessor.On("ProcessQueue", ctx).
			Return(&deliveryDomain.RunStats{Claimed: 3, Sent: 2, Failed: 1}, nil)

		var out bytes.Buffer
		err := RunProcessQueue(ctx, mockProcessor, logger, &out, "text")

		require.NoError(t, err)
		require.Equal(t, "Claimed 3 message(s): 2 sent, 1 failed\n", out.String())
		mockProcessor.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockProcessor := &deliveryMocks.MockProcessorUseCase{}
		mockProcessor.On("ProcessQueue", ctx).Return(&deliveryDomain.RunStats{}, nil)

		var out bytes.Buffer
		err := RunProcessQueue(ctx, mockProcessor, logger, &out, "json")

		require.NoError(t, err)
		require.JSONEq(t, `{"claimed":0,"sent":0,"failed":0}`, out.String())
	})

	t.Run("processor-error", func(t *testing.T) {
		mockProcessor := &deliveryMocks.MockProcessorUseCase{}
		mockProcessor.On("ProcessQueue", ctx).Return(nil, errors.New("claim failed"))

		err := RunProcessQueue(ctx, mockProcessor, logger, &bytes.Buffer{}, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to process delivery queue")
	})
}
