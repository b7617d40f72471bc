package queries

import (
	"context"
	"errors"

	"sitta/internal/core/domain/model/reference"
	"sitta/internal/core/domain/model/stock"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/guard"
)

var ErrGetStockAlertsQueryIsNotConstructed = errors.New(
	"GetStockAlertsQuery must be created via NewGetStockAlertsQuery constructor",
)

// GetStockAlertsQuery selects items that are empty or below their safety level.
type GetStockAlertsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStockAlertsQuery() GetStockAlertsQuery {
	return GetStockAlertsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStockAlertsQuery) Validate() error {
	return q.guard.Validate(ErrGetStockAlertsQueryIsNotConstructed)
}

// GetStockAlertsQueryResponse splits the alerts by severity.
type GetStockAlertsQueryResponse struct {
	Empty []StockItemResponse
	Low   []StockItemResponse
}

type GetStockAlertsQueryHandler struct {
	repo    ports.StockRepository
	catalog *reference.Catalog
}

func NewGetStockAlertsQueryHandler(repo ports.StockRepository, catalog *reference.Catalog) GetStockAlertsQueryHandler {
	return GetStockAlertsQueryHandler{repo: repo, catalog: catalog}
}

func (h GetStockAlertsQueryHandler) Handle(ctx context.Context, query GetStockAlertsQuery) (GetStockAlertsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStockAlertsQueryResponse{}, err
	}

	items, err := h.repo.GetAll(ctx)
	if err != nil {
		return GetStockAlertsQueryResponse{}, err
	}

	resp := GetStockAlertsQueryResponse{
		Empty: make([]StockItemResponse, 0),
		Low:   make([]StockItemResponse, 0),
	}
	for _, item := range items {
		switch item.Status() {
		case stock.Empty:
			resp.Empty = append(resp.Empty, NewStockItemResponse(item, h.catalog))
		case stock.Low:
			resp.Low = append(resp.Low, NewStockItemResponse(item, h.catalog))
		case stock.Unknown, stock.Safe:
		}
	}
	return resp, nil
}
