package queries

import (
	"context"

	"sitta/internal/core/domain/model/reference"
	"sitta/internal/core/ports"
)

// ListStockQueryHandler runs the stock view over the committed stock collection.
type ListStockQueryHandler struct {
	repo    ports.StockRepository
	catalog *reference.Catalog
}

func NewListStockQueryHandler(repo ports.StockRepository, catalog *reference.Catalog) ListStockQueryHandler {
	return ListStockQueryHandler{repo: repo, catalog: catalog}
}

func (h ListStockQueryHandler) Handle(ctx context.Context, query ListStockQuery) (ListStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListStockQueryResponse{}, err
	}

	items, err := h.repo.GetAll(ctx)
	if err != nil {
		return ListStockQueryResponse{}, err
	}

	view := query.View()
	filtered := view.Apply(items)

	return ListStockQueryResponse{
		Items:           newStockItemResponses(filtered, h.catalog),
		Total:           len(filtered),
		HasActiveFilter: view.HasActiveFilter(),
	}, nil
}
