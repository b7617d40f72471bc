package queries

import (
	"context"
	"errors"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/services"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/guard"
)

var ErrGetNextOrderNumberQueryIsNotConstructed = errors.New(
	"GetNextOrderNumberQuery must be created via NewGetNextOrderNumberQuery constructor",
)

// GetNextOrderNumberQuery previews the number the next created order will get,
// as long as nothing is created in between. Nothing is reserved.
type GetNextOrderNumberQuery struct {
	guard guard.ConstructorGuard
}

func NewGetNextOrderNumberQuery() GetNextOrderNumberQuery {
	return GetNextOrderNumberQuery{guard: guard.NewConstructorGuard()}
}

func (q GetNextOrderNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetNextOrderNumberQueryIsNotConstructed)
}

type GetNextOrderNumberQueryHandler struct {
	repo    ports.DeliveryOrderRepository
	clock   kernel.Clock
	numbers services.NumberGenerator
}

func NewGetNextOrderNumberQueryHandler(repo ports.DeliveryOrderRepository, clock kernel.Clock) GetNextOrderNumberQueryHandler {
	return GetNextOrderNumberQueryHandler{repo: repo, clock: clock, numbers: services.NewNumberGenerator()}
}

func (h GetNextOrderNumberQueryHandler) Handle(ctx context.Context, query GetNextOrderNumberQuery) (delivery.Number, error) {
	if err := query.Validate(); err != nil {
		return delivery.Number{}, err
	}

	existing, err := h.repo.Numbers(ctx)
	if err != nil {
		return delivery.Number{}, err
	}

	return h.numbers.Next(existing, h.clock.Now().Year())
}
