package services

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"sitta/internal/core/domain/model/stock"
	"sitta/internal/pkg/errs"
)

// SortField names the stock attribute the view is ordered by.
type SortField string

const (
	SortNone     SortField = ""
	SortCode     SortField = "code"
	SortTitle    SortField = "title"
	SortCategory SortField = "category"
	SortRegion   SortField = "region"
	SortShelf    SortField = "shelf"
	SortPrice    SortField = "price"
	SortQuantity SortField = "quantity"
	SortSafety   SortField = "safety"
)

// SortFields lists every sortable field.
func SortFields() []SortField {
	return []SortField{SortCode, SortTitle, SortCategory, SortRegion, SortShelf, SortPrice, SortQuantity, SortSafety}
}

// ParseSortField accepts a field name case-insensitively. Blank means no sort.
func ParseSortField(s string) (SortField, error) {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	if f == SortNone || slices.Contains(SortFields(), f) {
		return f, nil
	}
	return SortNone, errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("%q is not a sortable field", s))
}

// StockView holds the filter and sort state of the stock listing.
//
// Business rules:
//   - Selecting a region always clears the category
//   - The category filter only applies while a region is selected
//   - Sorting is stable; strings compare case-insensitively, numbers numerically
//   - Apply never reorders or mutates its input
type StockView struct {
	region     string
	category   string
	status     stock.Status
	sortField  SortField
	descending bool
}

// NewStockView returns a view with no filter and no sort.
func NewStockView() *StockView {
	return &StockView{}
}

func (v *StockView) Region() string       { return v.region }
func (v *StockView) Category() string     { return v.category }
func (v *StockView) Status() stock.Status { return v.status }
func (v *StockView) SortField() SortField { return v.sortField }
func (v *StockView) Descending() bool     { return v.descending }

// SelectRegion sets the region filter and resets the dependent category.
func (v *StockView) SelectRegion(region string) {
	v.region = strings.TrimSpace(region)
	v.category = ""
}

func (v *StockView) SelectCategory(category string) {
	v.category = strings.TrimSpace(category)
}

// SelectStatus filters by derived stock status. Unknown clears it.
func (v *StockView) SelectStatus(status stock.Status) {
	v.status = status
}

// ToggleSort flips the direction when field is already active, otherwise sorts
// ascending by field.
func (v *StockView) ToggleSort(field SortField) {
	if v.sortField == field {
		v.descending = !v.descending
		return
	}
	v.sortField = field
	v.descending = false
}

// SortBy sets field and direction directly.
func (v *StockView) SortBy(field SortField, descending bool) {
	v.sortField = field
	v.descending = descending
}

// Reset clears every filter and the sort.
func (v *StockView) Reset() {
	*v = StockView{}
}

// HasActiveFilter reports whether any filter is set. Sorting does not count.
func (v *StockView) HasActiveFilter() bool {
	return v.region != "" || v.category != "" || v.status != stock.Unknown
}

// AvailableCategories returns the distinct categories of items in the selected
// region, in first-seen order. Without a region it is empty.
func (v *StockView) AvailableCategories(items []*stock.Item) []string {
	return CategoriesInRegion(items, v.region)
}

// CategoriesInRegion is AvailableCategories for an explicit region.
func CategoriesInRegion(items []*stock.Item, region string) []string {
	categories := []string{}
	if region == "" {
		return categories
	}
	seen := make(map[string]struct{})
	for _, item := range items {
		if item.RegionCode() != region {
			continue
		}
		if _, ok := seen[item.CategoryCode()]; ok {
			continue
		}
		seen[item.CategoryCode()] = struct{}{}
		categories = append(categories, item.CategoryCode())
	}
	return categories
}

// Apply filters and sorts into a new slice.
func (v *StockView) Apply(items []*stock.Item) []*stock.Item {
	result := make([]*stock.Item, 0, len(items))
	for _, item := range items {
		if v.matches(item) {
			result = append(result, item)
		}
	}

	if v.sortField == SortNone {
		return result
	}

	compare := comparatorFor(v.sortField)
	slices.SortStableFunc(result, func(a, b *stock.Item) int {
		if v.descending {
			return compare(b, a)
		}
		return compare(a, b)
	})
	return result
}

func (v *StockView) matches(item *stock.Item) bool {
	if v.region != "" && item.RegionCode() != v.region {
		return false
	}
	if v.region != "" && v.category != "" && item.CategoryCode() != v.category {
		return false
	}
	if v.status != stock.Unknown && item.Status() != v.status {
		return false
	}
	return true
}

func comparatorFor(field SortField) func(a, b *stock.Item) int {
	switch field {
	case SortCode:
		return byString((*stock.Item).Code)
	case SortTitle:
		return byString((*stock.Item).Title)
	case SortCategory:
		return byString((*stock.Item).CategoryCode)
	case SortRegion:
		return byString((*stock.Item).RegionCode)
	case SortShelf:
		return byString((*stock.Item).ShelfLocation)
	case SortPrice:
		return func(a, b *stock.Item) int { return a.Price().Cmp(b.Price()) }
	case SortQuantity:
		return byInt((*stock.Item).Quantity)
	case SortSafety:
		return byInt((*stock.Item).Safety)
	default:
		return func(_, _ *stock.Item) int { return 0 }
	}
}

func byString(get func(*stock.Item) string) func(a, b *stock.Item) int {
	return func(a, b *stock.Item) int {
		return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b)))
	}
}

func byInt(get func(*stock.Item) int) func(a, b *stock.Item) int {
	return func(a, b *stock.Item) int {
		return cmp.Compare(get(a), get(b))
	}
}
