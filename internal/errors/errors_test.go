package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customError struct {
	Msg string
}

func (e customError) Error() string { return e.Msg }

func TestNew(t *testing.T) {
	err := New("test error")
	require.Error(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wrap non-nil error", func(t *testing.T) {
		baseErr := errors.New("base error")
		wrapped := Wrap(baseErr, "wrapped")
		require.Error(t, wrapped)
		assert.Equal(t, "wrapped: base error", wrapped.Error())
		assert.True(t, Is(wrapped, baseErr))
	})

	t.Run("wrap nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, "wrapped"))
	})
}

func TestWrapAs(t *testing.T) {
	assert.Nil(t, WrapAs(nil, ErrStorage, "failed"))

	baseErr := errors.New("connection reset")
	err := WrapAs(baseErr, ErrStorage, "failed to update queue entry")
	assert.Equal(t, "failed to update queue entry: storage error: connection reset", err.Error())
	assert.True(t, Is(err, ErrStorage))
	assert.True(t, Is(err, baseErr))
}

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		excluded []error
	}{
		{"configuration", Wrap(ErrConfiguration, "encryption key not set"), ErrConfiguration, []error{ErrAuthenticationFailure}},
		{"authentication", Wrap(ErrAuthenticationFailure, "tag mismatch"), ErrAuthenticationFailure, []error{ErrConfiguration}},
		{"storage", Wrap(ErrStorage, "update failed"), ErrStorage, []error{ErrDelivery}},
		{"delivery", Wrap(ErrDelivery, "relay rejected"), ErrDelivery, []error{ErrStorage}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Is(tt.err, tt.target))
			for _, other := range tt.excluded {
				assert.False(t, Is(tt.err, other))
			}
		})
	}
}

func TestAs(t *testing.T) {
	err := Wrap(customError{Msg: "custom"}, "context")

	var target customError
	require.True(t, As(err, &target))
	assert.Equal(t, "custom", target.Msg)
}

func TestJoin(t *testing.T) {
	assert.Nil(t, Join(nil, nil))

	err := Join(ErrStorage, nil, ErrDelivery)
	assert.True(t, Is(err, ErrStorage))
	assert.True(t, Is(err, ErrDelivery))
}
