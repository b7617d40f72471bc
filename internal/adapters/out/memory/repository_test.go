package memory_test

import (
	"context"
	"testing"

	"sitta/internal/adapters/out/memory"
	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/stock"
	"sitta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codesOf(items []*stock.Item) []string {
	codes := make([]string, 0, len(items))
	for _, item := range items {
		codes = append(codes, item.Code())
	}
	return codes
}

func TestStockRepository(t *testing.T) {
	ctx := context.Background()

	seeded := func(t *testing.T) *memory.Store {
		store := memory.NewStore()
		require.NoError(t, store.Seed(context.Background(), []*stock.Item{
			newItem(t, "EKMA4116", 28),
			newItem(t, "EKMA4115", 7),
			newItem(t, "BIOL4201", 0),
		}, nil))
		return store
	}

	t.Run("should keep insertion order", func(t *testing.T) {
		repo := seeded(t).StockRepository()

		items, err := repo.GetAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"EKMA4116", "EKMA4115", "BIOL4201"}, codesOf(items))
	})

	t.Run("should reject duplicate code and leave collection untouched", func(t *testing.T) {
		repo := seeded(t).StockRepository()

		err := repo.Add(ctx, newItem(t, "EKMA4115", 99))

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, 7, items[1].Quantity())
	})

	t.Run("should delete and keep order of the rest", func(t *testing.T) {
		repo := seeded(t).StockRepository()

		require.NoError(t, repo.Delete(ctx, "EKMA4115"))

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"EKMA4116", "BIOL4201"}, codesOf(items))
		require.ErrorIs(t, repo.Delete(ctx, "EKMA4115"), errs.ErrObjectNotFound)
	})

	t.Run("should update in place", func(t *testing.T) {
		repo := seeded(t).StockRepository()
		item, err := repo.Get(ctx, "BIOL4201")
		require.NoError(t, err)

		attrs := item.Attributes()
		attrs.Quantity = 12
		require.NoError(t, item.Update(attrs))
		require.NoError(t, repo.Update(ctx, item))

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"EKMA4116", "EKMA4115", "BIOL4201"}, codesOf(items))
		assert.Equal(t, 12, items[2].Quantity())
	})

	t.Run("should not find missing item", func(t *testing.T) {
		repo := seeded(t).StockRepository()

		_, err := repo.Get(ctx, "NOPE")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.ErrorIs(t, repo.Update(ctx, newItem(t, "NOPE", 1)), errs.ErrObjectNotFound)
	})

	t.Run("should hand out copies", func(t *testing.T) {
		repo := seeded(t).StockRepository()
		item, err := repo.Get(ctx, "EKMA4116")
		require.NoError(t, err)

		attrs := item.Attributes()
		attrs.Quantity = 0
		require.NoError(t, item.Update(attrs))

		again, err := repo.Get(ctx, "EKMA4116")
		require.NoError(t, err)
		assert.Equal(t, 28, again.Quantity())
	})

	t.Run("should reject unconstructed item", func(t *testing.T) {
		repo := seeded(t).StockRepository()
		require.ErrorIs(t, repo.Add(ctx, &stock.Item{}), stock.ErrItemIsNotConstructed)
	})
}

func TestDeliveryOrderRepository(t *testing.T) {
	ctx := context.Background()

	seeded := func(t *testing.T) *memory.Store {
		store := memory.NewStore()
		require.NoError(t, store.Seed(context.Background(), nil, []*delivery.DeliveryOrder{
			newOrder(t, "DO2025-0002"),
			newOrder(t, "DO2025-0001"),
		}))
		return store
	}

	t.Run("should list numbers in insertion order", func(t *testing.T) {
		repo := seeded(t).DeliveryOrderRepository()

		numbers, err := repo.Numbers(ctx)

		require.NoError(t, err)
		assert.Equal(t, []delivery.Number{
			delivery.MustParseNumber("DO2025-0002"),
			delivery.MustParseNumber("DO2025-0001"),
		}, numbers)
	})

	t.Run("should reject duplicate number", func(t *testing.T) {
		repo := seeded(t).DeliveryOrderRepository()

		err := repo.Add(ctx, newOrder(t, "DO2025-0001"))

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		orders, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("should keep progress history on update", func(t *testing.T) {
		repo := seeded(t).DeliveryOrderRepository()
		o, err := repo.Get(ctx, delivery.MustParseNumber("DO2025-0001"))
		require.NoError(t, err)

		require.NoError(t, o.AppendProgress(changedAt, "Tiba di gudang Jakarta"))
		require.NoError(t, repo.Update(ctx, o))

		stored, err := repo.Get(ctx, delivery.MustParseNumber("DO2025-0001"))
		require.NoError(t, err)
		require.Len(t, stored.Progress(), 2)
		assert.Equal(t, "Tiba di gudang Jakarta", stored.Progress()[1].Description())
	})

	t.Run("should not find missing or unconstructed number", func(t *testing.T) {
		repo := seeded(t).DeliveryOrderRepository()

		_, err := repo.Get(ctx, delivery.MustParseNumber("DO2025-0099"))
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = repo.Get(ctx, delivery.Number{})
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		require.ErrorIs(t, repo.Update(ctx, newOrder(t, "DO2025-0099")), errs.ErrObjectNotFound)
	})
}

func TestStore_Seed(t *testing.T) {
	t.Run("should reject repeated keys and stay empty", func(t *testing.T) {
		store := memory.NewStore()

		err := store.Seed(context.Background(), []*stock.Item{
			newItem(t, "EKMA4116", 1),
			newItem(t, "EKMA4116", 2),
		}, nil)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		items, err := store.StockRepository().GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
