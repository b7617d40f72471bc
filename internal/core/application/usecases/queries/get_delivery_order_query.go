package queries

import (
	"context"
	"errors"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/reference"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/errs"
	"sitta/internal/pkg/guard"
)

var ErrGetDeliveryOrderQueryIsNotConstructed = errors.New(
	"GetDeliveryOrderQuery must be created via NewGetDeliveryOrderQuery constructor",
)

// GetDeliveryOrderQuery fetches one order with its full progress history.
type GetDeliveryOrderQuery struct {
	number delivery.Number

	guard guard.ConstructorGuard
}

// NewGetDeliveryOrderQuery reports a number that does not parse as not found,
// since no order can carry it.
func NewGetDeliveryOrderQuery(number string) (GetDeliveryOrderQuery, error) {
	n, err := delivery.ParseNumber(number)
	if err != nil {
		return GetDeliveryOrderQuery{}, errs.NewObjectNotFoundErrorWithCause("deliveryOrder", number, err)
	}
	return GetDeliveryOrderQuery{number: n, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryOrderQueryIsNotConstructed)
}

type GetDeliveryOrderQueryHandler struct {
	repo    ports.DeliveryOrderRepository
	catalog *reference.Catalog
}

func NewGetDeliveryOrderQueryHandler(
	repo ports.DeliveryOrderRepository,
	catalog *reference.Catalog,
) GetDeliveryOrderQueryHandler {
	return GetDeliveryOrderQueryHandler{repo: repo, catalog: catalog}
}

func (h GetDeliveryOrderQueryHandler) Handle(ctx context.Context, query GetDeliveryOrderQuery) (DeliveryOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryOrderResponse{}, err
	}

	order, err := h.repo.Get(ctx, query.number)
	if err != nil {
		return DeliveryOrderResponse{}, err
	}

	return NewDeliveryOrderResponse(order, h.catalog), nil
}
