package delivery_test

import (
	"testing"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(delivery.Unknown))
	assert.Equal(t, 1, int(delivery.Pending))
	assert.Equal(t, 2, int(delivery.InTransit))
	assert.Equal(t, 3, int(delivery.Delivered))
	assert.Equal(t, 4, int(delivery.Cancelled))
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range delivery.Statuses() {
		t.Run(status.String(), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown", func(t *testing.T) {
		require.ErrorIs(t, delivery.Unknown.Validate(), errs.ErrValueIsInvalid)
	})

	t.Run("should reject out of range", func(t *testing.T) {
		require.ErrorIs(t, delivery.Status(99).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestParseStatus(t *testing.T) {
	tests := map[string]delivery.Status{
		"Pending":          delivery.Pending,
		"in transit":       delivery.InTransit,
		"Dalam Perjalanan": delivery.InTransit,
		" terkirim ":       delivery.Delivered,
		"DELIVERED":        delivery.Delivered,
		"Dibatalkan":       delivery.Cancelled,
		"canceled":         delivery.Cancelled,
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			got, err := delivery.ParseStatus(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("should reject unknown text", func(t *testing.T) {
		got, err := delivery.ParseStatus("Hilang")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, delivery.Unknown, got)
	})
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Dalam Perjalanan", delivery.InTransit.Label())
	assert.Equal(t, "Terkirim", delivery.Delivered.Label())
	assert.Equal(t, "Unknown", delivery.Status(42).Label())
	assert.Equal(t, "Unknown", delivery.Status(42).String())
}

func TestStatus_TransitionTo(t *testing.T) {
	allowed := []struct {
		from, to delivery.Status
	}{
		{delivery.Pending, delivery.InTransit},
		{delivery.Pending, delivery.Cancelled},
		{delivery.InTransit, delivery.Delivered},
		{delivery.InTransit, delivery.Cancelled},
		{delivery.Unknown, delivery.Pending},
		{delivery.Unknown, delivery.Delivered},
	}
	for _, tc := range allowed {
		t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			got, err := tc.from.TransitionTo(tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, got)
		})
	}

	rejected := []struct {
		from, to delivery.Status
	}{
		{delivery.Pending, delivery.Delivered},
		{delivery.Pending, delivery.Pending},
		{delivery.InTransit, delivery.Pending},
		{delivery.Delivered, delivery.Cancelled},
		{delivery.Cancelled, delivery.InTransit},
		{delivery.Pending, delivery.Unknown},
	}
	for _, tc := range rejected {
		t.Run("reject "+tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
			_, err := tc.from.TransitionTo(tc.to)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}

	assert.True(t, delivery.Delivered.IsTerminal())
	assert.True(t, delivery.Cancelled.IsTerminal())
	assert.False(t, delivery.InTransit.IsTerminal())
}
