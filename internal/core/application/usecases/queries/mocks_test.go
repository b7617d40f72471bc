package queries_test

import (
	"context"
	"testing"
	"time"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/reference"
	"sitta/internal/core/domain/model/stock"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(_ context.Context, _ *stock.Item) error    { return nil }
func (m *MockStockRepository) Update(_ context.Context, _ *stock.Item) error { return nil }
func (m *MockStockRepository) Delete(_ context.Context, _ string) error      { return nil }
func (m *MockStockRepository) Get(ctx context.Context, code string) (*stock.Item, error) {
	args := m.Called(ctx, code)
	item, _ := args.Get(0).(*stock.Item)
	return item, args.Error(1)
}
func (m *MockStockRepository) GetAll(ctx context.Context) ([]*stock.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]*stock.Item)
	return items, args.Error(1)
}

type MockDeliveryOrderRepository struct{ mock.Mock }

func (m *MockDeliveryOrderRepository) Add(_ context.Context, _ *delivery.DeliveryOrder) error {
	return nil
}
func (m *MockDeliveryOrderRepository) Update(_ context.Context, _ *delivery.DeliveryOrder) error {
	return nil
}
func (m *MockDeliveryOrderRepository) Get(ctx context.Context, n delivery.Number) (*delivery.DeliveryOrder, error) {
	args := m.Called(ctx, n)
	o, _ := args.Get(0).(*delivery.DeliveryOrder)
	return o, args.Error(1)
}
func (m *MockDeliveryOrderRepository) GetAll(ctx context.Context) ([]*delivery.DeliveryOrder, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*delivery.DeliveryOrder)
	return orders, args.Error(1)
}
func (m *MockDeliveryOrderRepository) Numbers(ctx context.Context) ([]delivery.Number, error) {
	args := m.Called(ctx)
	numbers, _ := args.Get(0).([]delivery.Number)
	return numbers, args.Error(1)
}

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func newItem(t *testing.T, code, title, category, region string, qty, safety int) *stock.Item {
	t.Helper()
	item, err := stock.NewItem(code, stock.Attributes{
		Title:         title,
		CategoryCode:  category,
		RegionCode:    region,
		ShelfLocation: "R1",
		Price:         money(t, 50000),
		Quantity:      qty,
		Safety:        safety,
	})
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, number, studentID string) *delivery.DeliveryOrder {
	t.Helper()
	at := time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC)
	o, err := delivery.NewDeliveryOrder(delivery.MustParseNumber(number), delivery.Details{
		StudentID:     studentID,
		RecipientName: "Rina",
		CourierCode:   "REG",
		BundleCode:    "PAKET-UT-001",
		ShipDate:      at,
		Total:         money(t, 120000),
	}, at)
	require.NoError(t, err)
	return o
}

func testCatalog(t *testing.T) *reference.Catalog {
	t.Helper()
	return reference.NewCatalog(
		[]reference.Region{{Code: "Jakarta", Name: "UPBJJ Jakarta"}},
		[]reference.Category{{Code: "MK Wajib", Name: "Mata Kuliah Wajib"}},
		[]reference.Courier{{Code: "REG", Name: "Reguler (3-5 hari)"}},
		[]reference.Bundle{{
			Code:     "PAKET-UT-001",
			Name:     "PAKET IPS Dasar",
			Contents: []string{"EKMA4116", "MISSING"},
			Price:    money(t, 120000),
		}},
	)
}
