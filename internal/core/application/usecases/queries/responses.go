// Package queries contains read operations over the committed session state.
// Queries return read models with reference codes already resolved to names.
package queries

import (
	"time"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/reference"
	"sitta/internal/core/domain/model/stock"
)

// StockItemResponse is the read model of one stock line.
type StockItemResponse struct {
	Code          string
	Title         string
	CategoryCode  string
	CategoryName  string
	RegionCode    string
	RegionName    string
	ShelfLocation string
	Price         kernel.Money
	Quantity      int
	Safety        int
	Status        stock.Status
	Note          string
}

// ProgressResponse is one entry of a delivery order's history.
type ProgressResponse struct {
	At          time.Time
	Description string
}

// DeliveryOrderResponse is the read model of a delivery order.
type DeliveryOrderResponse struct {
	Number        string
	StudentID     string
	RecipientName string
	Status        delivery.Status
	CourierCode   string
	CourierName   string
	ShipDate      time.Time
	BundleCode    string
	BundleName    string
	Total         kernel.Money
	Progress      []ProgressResponse
}

// NewStockItemResponse builds the read model of item.
func NewStockItemResponse(item *stock.Item, catalog *reference.Catalog) StockItemResponse {
	return StockItemResponse{
		Code:          item.Code(),
		Title:         item.Title(),
		CategoryCode:  item.CategoryCode(),
		CategoryName:  catalog.CategoryName(item.CategoryCode()),
		RegionCode:    item.RegionCode(),
		RegionName:    catalog.RegionName(item.RegionCode()),
		ShelfLocation: item.ShelfLocation(),
		Price:         item.Price(),
		Quantity:      item.Quantity(),
		Safety:        item.Safety(),
		Status:        item.Status(),
		Note:          item.Note(),
	}
}

func newStockItemResponses(items []*stock.Item, catalog *reference.Catalog) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewStockItemResponse(item, catalog))
	}
	return out
}

// NewDeliveryOrderResponse builds the read model of order. Commands return
// aggregates; the HTTP adapter uses this to render them like query results.
func NewDeliveryOrderResponse(order *delivery.DeliveryOrder, catalog *reference.Catalog) DeliveryOrderResponse {
	events := order.Progress()
	progress := make([]ProgressResponse, 0, len(events))
	for _, e := range events {
		progress = append(progress, ProgressResponse{At: e.At(), Description: e.Description()})
	}

	return DeliveryOrderResponse{
		Number:        order.Number().String(),
		StudentID:     order.StudentID(),
		RecipientName: order.RecipientName(),
		Status:        order.Status(),
		CourierCode:   order.CourierCode(),
		CourierName:   catalog.CourierName(order.CourierCode()),
		ShipDate:      order.ShipDate(),
		BundleCode:    order.BundleCode(),
		BundleName:    catalog.BundleName(order.BundleCode()),
		Total:         order.Total(),
		Progress:      progress,
	}
}
