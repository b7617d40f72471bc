package delivery_test

import (
	"testing"
	"time"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 8, 25, 10, 12, 30, 0, time.UTC)

func validDetails(t *testing.T) delivery.Details {
	t.Helper()
	total, err := kernel.NewMoneyFromInt(120000)
	require.NoError(t, err)

	return delivery.Details{
		StudentID:     "123456789",
		RecipientName: "Rina Wulandari",
		CourierCode:   "REG",
		BundleCode:    "PAKET-UT-001",
		ShipDate:      time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
		Total:         total,
	}
}

func newOrder(t *testing.T) *delivery.DeliveryOrder {
	t.Helper()
	o, err := delivery.NewDeliveryOrder(delivery.MustParseNumber("DO2025-0001"), validDetails(t), createdAt)
	require.NoError(t, err)
	return o
}

func TestNewDeliveryOrder(t *testing.T) {
	t.Run("should start pending with one progress event", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, "DO2025-0001", o.Number().String())
		assert.Equal(t, delivery.Pending, o.Status())
		assert.Equal(t, "123456789", o.StudentID())
		assert.Equal(t, "REG", o.CourierCode())

		progress := o.Progress()
		require.Len(t, progress, 1)
		assert.Equal(t, createdAt, progress[0].At())
		assert.Equal(t, delivery.InitialProgressDescription, progress[0].Description())
	})

	t.Run("should report all missing fields", func(t *testing.T) {
		o, err := delivery.NewDeliveryOrder(delivery.MustParseNumber("DO2025-0001"), delivery.Details{}, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		for _, field := range []string{"studentID", "recipientName", "courierCode", "bundleCode", "shipDate", "total"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should reject unconstructed number", func(t *testing.T) {
		_, err := delivery.NewDeliveryOrder(delivery.Number{}, validDetails(t), createdAt)
		require.ErrorIs(t, err, delivery.ErrNumberIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o *delivery.DeliveryOrder
		require.ErrorIs(t, o.Validate(), delivery.ErrDeliveryOrderIsNotConstructed)
		require.ErrorIs(t, (&delivery.DeliveryOrder{}).Validate(), delivery.ErrDeliveryOrderIsNotConstructed)
	})
}

func TestDeliveryOrder_AppendProgress(t *testing.T) {
	t.Run("should append without touching status", func(t *testing.T) {
		o := newOrder(t)
		at := createdAt.Add(time.Hour)

		require.NoError(t, o.AppendProgress(at, "  Tiba di hub Jakarta  "))

		progress := o.Progress()
		require.Len(t, progress, 2)
		assert.Equal(t, "Tiba di hub Jakarta", progress[1].Description())
		assert.Equal(t, at, progress[1].At())
		assert.Equal(t, delivery.Pending, o.Status())
	})

	t.Run("should keep insertion order even for older timestamps", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.AppendProgress(createdAt.Add(-time.Hour), "backdated"))

		last, ok := o.LastProgress()
		require.True(t, ok)
		assert.Equal(t, "backdated", last.Description())
	})

	t.Run("should reject blank description", func(t *testing.T) {
		o := newOrder(t)

		err := o.AppendProgress(createdAt, "   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, o.Progress(), 1)
	})
}

func TestDeliveryOrder_ChangeStatus(t *testing.T) {
	t.Run("should change status and record it", func(t *testing.T) {
		o := newOrder(t)
		at := createdAt.Add(2 * time.Hour)

		require.NoError(t, o.ChangeStatus(delivery.InTransit, at))

		assert.Equal(t, delivery.InTransit, o.Status())
		last, _ := o.LastProgress()
		assert.Equal(t, "status changed to: InTransit", last.Description())
		assert.Equal(t, at, last.At())
		assert.Len(t, o.Progress(), 2)
	})

	t.Run("should reject disallowed transition and leave order untouched", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(delivery.Delivered, createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, delivery.Pending, o.Status())
		assert.Len(t, o.Progress(), 1)
	})

	t.Run("terminal order cannot move", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(delivery.Cancelled, createdAt))

		require.Error(t, o.ChangeStatus(delivery.InTransit, createdAt))
		assert.Equal(t, delivery.Cancelled, o.Status())
	})
}

func TestRestoreDeliveryOrder(t *testing.T) {
	t.Run("should keep unknown status and empty history", func(t *testing.T) {
		o, err := delivery.RestoreDeliveryOrder(
			delivery.MustParseNumber("DO2023-0042"),
			delivery.Details{StudentID: "1"},
			delivery.Status(17),
			nil,
		)

		require.NoError(t, err)
		assert.Equal(t, delivery.Unknown, o.Status())
		assert.Empty(t, o.Progress())
		assert.True(t, o.Total().IsZero())
		_, ok := o.LastProgress()
		assert.False(t, ok)

		require.NoError(t, o.ChangeStatus(delivery.Delivered, createdAt))
	})

	t.Run("should require a number", func(t *testing.T) {
		_, err := delivery.RestoreDeliveryOrder(delivery.Number{}, delivery.Details{}, delivery.Pending, nil)
		require.Error(t, err)
	})
}

func TestDeliveryOrder_Clone(t *testing.T) {
	o := newOrder(t)
	c := o.Clone()

	require.NoError(t, c.AppendProgress(createdAt, "only on clone"))

	assert.Len(t, o.Progress(), 1)
	assert.Len(t, c.Progress(), 2)
}
