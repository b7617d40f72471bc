package queries

import (
	"context"
	"errors"
	"strings"

	"sitta/internal/core/domain/services"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/guard"
)

var ErrGetAvailableCategoriesQueryIsNotConstructed = errors.New(
	"GetAvailableCategoriesQuery must be created via NewGetAvailableCategoriesQuery constructor",
)

// GetAvailableCategoriesQuery lists the categories present in a region. The
// result feeds the category selector, which stays empty until a region is chosen.
type GetAvailableCategoriesQuery struct {
	region string

	guard guard.ConstructorGuard
}

func NewGetAvailableCategoriesQuery(region string) GetAvailableCategoriesQuery {
	return GetAvailableCategoriesQuery{region: strings.TrimSpace(region), guard: guard.NewConstructorGuard()}
}

func (q GetAvailableCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableCategoriesQueryIsNotConstructed)
}

type GetAvailableCategoriesQueryHandler struct {
	repo ports.StockRepository
}

func NewGetAvailableCategoriesQueryHandler(repo ports.StockRepository) GetAvailableCategoriesQueryHandler {
	return GetAvailableCategoriesQueryHandler{repo: repo}
}

// Handle returns distinct category codes in first-seen order.
func (h GetAvailableCategoriesQueryHandler) Handle(ctx context.Context, query GetAvailableCategoriesQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return services.CategoriesInRegion(items, query.region), nil
}
