package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/reference"
	"sitta/internal/core/ports"
	"sitta/internal/pkg/errs"
	"sitta/internal/pkg/guard"
)

var ErrSearchDeliveryOrdersQueryIsNotConstructed = errors.New(
	"SearchDeliveryOrdersQuery must be created via NewSearchDeliveryOrdersQuery constructor",
)

// SearchField selects which order attribute the search text is matched against.
type SearchField string

const (
	SearchByNumber  SearchField = "number"
	SearchByStudent SearchField = "student"
)

// SearchDeliveryOrdersQuery finds orders whose number or student id contains
// the text, ignoring case. Blank text matches every order.
type SearchDeliveryOrdersQuery struct {
	text string
	by   SearchField

	guard guard.ConstructorGuard
}

// NewSearchDeliveryOrdersQuery defaults by to SearchByNumber.
func NewSearchDeliveryOrdersQuery(text, by string) (SearchDeliveryOrdersQuery, error) {
	field := SearchField(strings.ToLower(strings.TrimSpace(by)))
	switch field {
	case "":
		field = SearchByNumber
	case SearchByNumber, SearchByStudent:
	default:
		return SearchDeliveryOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"by",
			fmt.Errorf("%q is not one of number, student", by),
		)
	}

	return SearchDeliveryOrdersQuery{
		text:  strings.ToLower(strings.TrimSpace(text)),
		by:    field,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q SearchDeliveryOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchDeliveryOrdersQueryIsNotConstructed)
}

func (q SearchDeliveryOrdersQuery) matches(order *delivery.DeliveryOrder) bool {
	if q.text == "" {
		return true
	}
	value := order.Number().String()
	if q.by == SearchByStudent {
		value = order.StudentID()
	}
	return strings.Contains(strings.ToLower(value), q.text)
}

type SearchDeliveryOrdersQueryHandler struct {
	repo    ports.DeliveryOrderRepository
	catalog *reference.Catalog
}

func NewSearchDeliveryOrdersQueryHandler(
	repo ports.DeliveryOrderRepository,
	catalog *reference.Catalog,
) SearchDeliveryOrdersQueryHandler {
	return SearchDeliveryOrdersQueryHandler{repo: repo, catalog: catalog}
}

// Handle returns matches in insertion order.
func (h SearchDeliveryOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchDeliveryOrdersQuery,
) ([]DeliveryOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]DeliveryOrderResponse, 0)
	for _, o := range orders {
		if query.matches(o) {
			result = append(result, NewDeliveryOrderResponse(o, h.catalog))
		}
	}
	return result, nil
}
