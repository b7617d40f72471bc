package commands_test

import (
	"context"

	"sitta/internal/core/application/usecases/commands"
	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/stock"
	"sitta/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(ctx context.Context, item *stock.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockStockRepository) Update(ctx context.Context, item *stock.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockStockRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}
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

func (m *MockDeliveryOrderRepository) Add(ctx context.Context, o *delivery.DeliveryOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockDeliveryOrderRepository) Update(ctx context.Context, o *delivery.DeliveryOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
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

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockStockUoW struct{ MockTx }

func (m *MockStockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockDeliveryOrderUoW struct{ MockTx }

func (m *MockDeliveryOrderUoW) DeliveryOrderRepository() ports.DeliveryOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryOrderRepository)
}

type MockDeliveryOrderUoWFactory struct{ mock.Mock }

func (m *MockDeliveryOrderUoWFactory) Create() commands.DeliveryOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryOrderUoW)
}
