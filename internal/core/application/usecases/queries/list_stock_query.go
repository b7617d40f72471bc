package queries

import (
	"errors"
	"strings"

	"sitta/internal/core/domain/model/stock"
	"sitta/internal/core/domain/services"
	"sitta/internal/pkg/guard"
)

var ErrListStockQueryIsNotConstructed = errors.New(
	"ListStockQuery must be created via NewListStockQuery constructor",
)

// ListStockQuery carries the stock view state: region, category, status filter
// and sort. Blank values mean "no filter" and "no sort".
type ListStockQuery struct {
	region     string
	category   string
	status     stock.Status
	sortField  services.SortField
	descending bool

	guard guard.ConstructorGuard
}

// NewListStockQuery parses status and sort. Unknown values are rejected.
func NewListStockQuery(region, category, status, sort string, descending bool) (ListStockQuery, error) {
	var statusErr error
	parsedStatus := stock.Unknown
	if strings.TrimSpace(status) != "" {
		parsedStatus, statusErr = stock.ParseStatus(status)
	}

	sortField, sortErr := services.ParseSortField(sort)

	if err := errors.Join(statusErr, sortErr); err != nil {
		return ListStockQuery{}, err
	}

	return ListStockQuery{
		region:     strings.TrimSpace(region),
		category:   strings.TrimSpace(category),
		status:     parsedStatus,
		sortField:  sortField,
		descending: descending,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListStockQuery) Validate() error {
	return q.guard.Validate(ErrListStockQueryIsNotConstructed)
}

// View builds the stock view for this query. The category is applied after the
// region, so it survives the region reset.
func (q ListStockQuery) View() *services.StockView {
	v := services.NewStockView()
	v.SelectRegion(q.region)
	v.SelectCategory(q.category)
	v.SelectStatus(q.status)
	v.SortBy(q.sortField, q.descending)
	return v
}

// ListStockQueryResponse is the filtered and sorted listing.
type ListStockQueryResponse struct {
	Items           []StockItemResponse
	Total           int
	HasActiveFilter bool
}
