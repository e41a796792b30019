package order_test

import (
	"testing"

	"progress/internal/core/domain/model/order"
	"progress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "NotStarted", order.NotStarted.String())
	assert.Equal(t, "InProgress", order.InProgress.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in       string
		expected order.Status
	}{
		{"NotStarted", order.NotStarted},
		{"not_started", order.NotStarted},
		{"In Progress", order.InProgress},
		{" completed ", order.Completed},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := order.ParseStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}

	t.Run("should reject unknown", func(t *testing.T) {
		s, err := order.ParseStatus("Unknown")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Unknown, s)
	})
}

func TestStatus_Start(t *testing.T) {
	for _, s := range order.Statuses() {
		next, err := s.Start()
		require.NoError(t, err)
		assert.Equal(t, order.InProgress, next)
	}

	_, err := order.Unknown.Start()
	require.Error(t, err)
}
