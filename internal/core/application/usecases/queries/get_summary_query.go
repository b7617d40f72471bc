package queries

import (
	"context"
	"errors"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/stock"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/guard"
)

var ErrGetSummaryQueryIsNotConstructed = errors.New(
	"GetSummaryQuery must be created via NewGetSummaryQuery constructor",
)

// GetSummaryQuery computes the dashboard counters.
type GetSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSummaryQuery() GetSummaryQuery {
	return GetSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSummaryQueryIsNotConstructed)
}

type GetSummaryQueryResponse struct {
	StockItems      int
	LowStockItems   int
	EmptyStockItems int
	DeliveryOrders  int
	PendingOrders   int
	InTransitOrders int
}

type GetSummaryQueryHandler struct {
	stockRepo ports.StockRepository
	orderRepo ports.DeliveryOrderRepository
}

func NewGetSummaryQueryHandler(
	stockRepo ports.StockRepository,
	orderRepo ports.DeliveryOrderRepository,
) GetSummaryQueryHandler {
	return GetSummaryQueryHandler{stockRepo: stockRepo, orderRepo: orderRepo}
}

func (h GetSummaryQueryHandler) Handle(ctx context.Context, query GetSummaryQuery) (GetSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSummaryQueryResponse{}, err
	}

	items, err := h.stockRepo.GetAll(ctx)
	if err != nil {
		return GetSummaryQueryResponse{}, err
	}
	orders, err := h.orderRepo.GetAll(ctx)
	if err != nil {
		return GetSummaryQueryResponse{}, err
	}

	resp := GetSummaryQueryResponse{
		StockItems:     len(items),
		DeliveryOrders: len(orders),
	}
	for _, item := range items {
		switch item.Status() {
		case stock.Empty:
			resp.EmptyStockItems++
		case stock.Low:
			resp.LowStockItems++
		case stock.Unknown, stock.Safe:
		}
	}
	for _, o := range orders {
		switch o.Status() {
		case delivery.Pending:
			resp.PendingOrders++
		case delivery.InTransit:
			resp.InTransitOrders++
		case delivery.Unknown, delivery.Delivered, delivery.Cancelled:
		}
	}
	return resp, nil
}
