package http

import (
	"sitta/internal/core/application/usecases/queries"
	"sitta/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toStockItem(item queries.StockItemResponse) servers.StockItem {
	out := servers.StockItem{
		Code:          item.Code,
		Title:         item.Title,
		CategoryCode:  item.CategoryCode,
		CategoryName:  item.CategoryName,
		RegionCode:    item.RegionCode,
		RegionName:    item.RegionName,
		ShelfLocation: item.ShelfLocation,
		Price:         item.Price.Float64(),
		PriceLabel:    item.Price.Format(),
		Quantity:      item.Quantity,
		Safety:        item.Safety,
		Status:        item.Status.String(),
		StatusLabel:   item.Status.Label(),
	}
	if item.Note != "" {
		note := item.Note
		out.Note = &note
	}
	return out
}

func toDeliveryOrder(o queries.DeliveryOrderResponse) servers.DeliveryOrder {
	progress := make([]servers.ProgressEvent, 0, len(o.Progress))
	for _, e := range o.Progress {
		progress = append(progress, servers.ProgressEvent{At: e.At, Description: e.Description})
	}

	out := servers.DeliveryOrder{
		Number:        o.Number,
		StudentId:     o.StudentID,
		RecipientName: o.RecipientName,
		Status:        o.Status.String(),
		StatusLabel:   o.Status.Label(),
		CourierCode:   o.CourierCode,
		CourierName:   o.CourierName,
		BundleCode:    o.BundleCode,
		BundleName:    o.BundleName,
		Total:         o.Total.Float64(),
		Progress:      progress,
	}
	if !o.ShipDate.IsZero() {
		out.ShipDate = &openapi_types.Date{Time: o.ShipDate}
	}
	return out
}

func toReferences(resp queries.GetReferencesQueryResponse) servers.References {
	out := servers.References{
		Regions:    make([]servers.CodeName, 0, len(resp.Regions)),
		Categories: make([]servers.CodeName, 0, len(resp.Categories)),
		Couriers:   make([]servers.CodeName, 0, len(resp.Couriers)),
		Bundles:    make([]servers.Bundle, 0, len(resp.Bundles)),
	}
	for _, r := range resp.Regions {
		out.Regions = append(out.Regions, servers.CodeName{Code: r.Code, Name: r.Name})
	}
	for _, c := range resp.Categories {
		out.Categories = append(out.Categories, servers.CodeName{Code: c.Code, Name: c.Name})
	}
	for _, c := range resp.Couriers {
		out.Couriers = append(out.Couriers, servers.CodeName{Code: c.Code, Name: c.Name})
	}
	for _, b := range resp.Bundles {
		contents := b.Contents
		if contents == nil {
			contents = []string{}
		}
		out.Bundles = append(out.Bundles, servers.Bundle{
			Code:     b.Code,
			Name:     b.Name,
			Contents: contents,
			Price:    b.Price.Float64(),
		})
	}
	return out
}
