package services_test

import (
	"testing"

	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/stock"
	"sitta/internal/core/domain/services"
	"sitta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(t *testing.T, code, title, category, region string, price int64, qty, safety int) *stock.Item {
	t.Helper()
	p, err := kernel.NewMoneyFromInt(price)
	require.NoError(t, err)
	i, err := stock.NewItem(code, stock.Attributes{
		Title:         title,
		CategoryCode:  category,
		RegionCode:    region,
		ShelfLocation: "R1",
		Price:         p,
		Quantity:      qty,
		Safety:        safety,
	})
	require.NoError(t, err)
	return i
}

func codes(items []*stock.Item) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.Code())
	}
	return out
}

func fixture(t *testing.T) []*stock.Item {
	return []*stock.Item{
		item(t, "A1", "beta", "MK Wajib", "Jakarta", 50000, 10, 5),
		item(t, "A2", "Alpha", "MK Pilihan", "Jakarta", 40000, 3, 5),
		item(t, "A3", "gamma", "MK Wajib", "Surabaya", 90000, 0, 5),
		item(t, "A4", "Alpha", "Praktikum", "Jakarta", 40000, 7, 5),
	}
}

func TestStockView_Filters(t *testing.T) {
	items := fixture(t)

	t.Run("no filter returns everything in input order", func(t *testing.T) {
		v := services.NewStockView()
		assert.Equal(t, []string{"A1", "A2", "A3", "A4"}, codes(v.Apply(items)))
		assert.False(t, v.HasActiveFilter())
	})

	t.Run("region filter", func(t *testing.T) {
		v := services.NewStockView()
		v.SelectRegion("Jakarta")
		assert.Equal(t, []string{"A1", "A2", "A4"}, codes(v.Apply(items)))
	})

	t.Run("category applies only with region", func(t *testing.T) {
		v := services.NewStockView()
		v.SelectCategory("MK Wajib")
		assert.Len(t, v.Apply(items), 4)

		v.SelectRegion("Jakarta")
		assert.Empty(t, v.Category(), "selecting a region resets the category")

		v.SelectCategory("MK Wajib")
		assert.Equal(t, []string{"A1"}, codes(v.Apply(items)))
	})

	t.Run("changing region resets category", func(t *testing.T) {
		v := services.NewStockView()
		v.SelectRegion("Jakarta")
		v.SelectCategory("MK Pilihan")
		v.SelectRegion("Surabaya")

		assert.Equal(t, "", v.Category())
		assert.Equal(t, []string{"A3"}, codes(v.Apply(items)))
	})

	t.Run("status filter uses the classifier", func(t *testing.T) {
		v := services.NewStockView()
		v.SelectStatus(stock.Low)
		assert.Equal(t, []string{"A2"}, codes(v.Apply(items)))

		v.SelectStatus(stock.Empty)
		assert.Equal(t, []string{"A3"}, codes(v.Apply(items)))
		assert.True(t, v.HasActiveFilter())
	})

	t.Run("reset clears all", func(t *testing.T) {
		v := services.NewStockView()
		v.SelectRegion("Jakarta")
		v.SelectStatus(stock.Safe)
		v.ToggleSort(services.SortPrice)

		v.Reset()

		assert.False(t, v.HasActiveFilter())
		assert.Equal(t, services.SortNone, v.SortField())
	})
}

func TestStockView_Sort(t *testing.T) {
	items := fixture(t)

	t.Run("strings compare case-insensitively and ties keep order", func(t *testing.T) {
		v := services.NewStockView()
		v.ToggleSort(services.SortTitle)
		assert.Equal(t, []string{"A2", "A4", "A1", "A3"}, codes(v.Apply(items)))
	})

	t.Run("toggle flips direction on the same field", func(t *testing.T) {
		v := services.NewStockView()
		v.ToggleSort(services.SortQuantity)
		assert.Equal(t, []string{"A3", "A2", "A4", "A1"}, codes(v.Apply(items)))

		v.ToggleSort(services.SortQuantity)
		assert.True(t, v.Descending())
		assert.Equal(t, []string{"A1", "A4", "A2", "A3"}, codes(v.Apply(items)))
	})

	t.Run("new field starts ascending", func(t *testing.T) {
		v := services.NewStockView()
		v.ToggleSort(services.SortQuantity)
		v.ToggleSort(services.SortQuantity)
		v.ToggleSort(services.SortPrice)

		assert.False(t, v.Descending())
		assert.Equal(t, []string{"A2", "A4", "A1", "A3"}, codes(v.Apply(items)))
	})

	t.Run("descending keeps ties in input order", func(t *testing.T) {
		v := services.NewStockView()
		v.SortBy(services.SortPrice, true)
		assert.Equal(t, []string{"A3", "A1", "A2", "A4"}, codes(v.Apply(items)))
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		v := services.NewStockView()
		v.SortBy(services.SortCode, true)
		_ = v.Apply(items)
		assert.Equal(t, []string{"A1", "A2", "A3", "A4"}, codes(items))
	})
}

func TestStockView_AvailableCategories(t *testing.T) {
	items := fixture(t)
	v := services.NewStockView()

	assert.Empty(t, v.AvailableCategories(items))

	v.SelectRegion("Jakarta")
	assert.Equal(t, []string{"MK Wajib", "MK Pilihan", "Praktikum"}, v.AvailableCategories(items))
}

func TestParseSortField(t *testing.T) {
	f, err := services.ParseSortField(" Price ")
	require.NoError(t, err)
	assert.Equal(t, services.SortPrice, f)

	f, err = services.ParseSortField("")
	require.NoError(t, err)
	assert.Equal(t, services.SortNone, f)

	_, err = services.ParseSortField("weight")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
