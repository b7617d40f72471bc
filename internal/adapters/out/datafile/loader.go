// Package datafile reads the static JSON document the session starts from:
// reference lists, bundles, stock and delivery tracking.
package datafile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/reference"
	"sitta/internal/core/domain/model/stock"
	"sitta/internal/pkg/errs"
)

// Dataset is everything the document provides, converted to domain values.
type Dataset struct {
	Catalog *reference.Catalog
	Stock   []*stock.Item
	Orders  []*delivery.DeliveryOrder
}

type Loader struct {
	location *time.Location
	logger   *slog.Logger
}

// NewLoader parses timestamps in loc; nil means time.Local.
func NewLoader(loc *time.Location, logger *slog.Logger) *Loader {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{location: loc, logger: logger.With("component", "datafile_loader")}
}

func (l *Loader) LoadFile(ctx context.Context, path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	ds, err := l.Decode(ctx, f)
	if err != nil {
		return Dataset{}, fmt.Errorf("load %s: %w", path, err)
	}
	l.logger.InfoContext(ctx, "data file loaded",
		"path", path,
		"stock_items", len(ds.Stock),
		"delivery_orders", len(ds.Orders),
	)
	return ds, nil
}

// Decode reads one document. Stock entries must be valid. Tracking entries
// whose key is not a valid order number are skipped, and unrecognised status
// strings load as delivery.Unknown; both are logged.
func (l *Loader) Decode(ctx context.Context, r io.Reader) (Dataset, error) {
	var doc documentDTO
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Dataset{}, fmt.Errorf("decode data document: %w", err)
	}

	bundles, err := toBundles(doc.Bundles)
	if err != nil {
		return Dataset{}, err
	}

	items := make([]*stock.Item, 0, len(doc.Stock))
	for i, dto := range doc.Stock {
		item, err := toStockItem(dto)
		if err != nil {
			return Dataset{}, fmt.Errorf("stok[%d]: %w", i, err)
		}
		items = append(items, item)
	}

	orders := make([]*delivery.DeliveryOrder, 0, len(doc.Tracking))
	for i, raw := range doc.Tracking {
		flat, err := flattenTracking(raw)
		if err != nil {
			return Dataset{}, fmt.Errorf("tracking[%d]: %w", i, err)
		}

		number, err := delivery.ParseNumber(flat.Number)
		if err != nil {
			l.logger.WarnContext(ctx, "skipping tracking entry with invalid order number",
				"index", i,
				"number", flat.Number,
				"error", err,
			)
			continue
		}

		o, err := l.toDeliveryOrder(ctx, number, flat.trackingDTO)
		if err != nil {
			return Dataset{}, fmt.Errorf("tracking[%d] %s: %w", i, flat.Number, err)
		}
		orders = append(orders, o)
	}

	return Dataset{
		Catalog: reference.NewCatalog(
			toRegions(doc.Regions),
			toCategories(doc.Categories),
			toCouriers(doc.Couriers),
			bundles,
		),
		Stock:  items,
		Orders: orders,
	}, nil
}

func toRegions(dtos []codeNameDTO) []reference.Region {
	out := make([]reference.Region, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, reference.Region{Code: d.Code, Name: d.Name})
	}
	return out
}

func toCategories(dtos []codeNameDTO) []reference.Category {
	out := make([]reference.Category, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, reference.Category{Code: d.Code, Name: d.Name})
	}
	return out
}

func toCouriers(dtos []codeNameDTO) []reference.Courier {
	out := make([]reference.Courier, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, reference.Courier{Code: d.Code, Name: d.Name})
	}
	return out
}

func toBundles(dtos []bundleDTO) ([]reference.Bundle, error) {
	out := make([]reference.Bundle, 0, len(dtos))
	for i, d := range dtos {
		price, err := kernel.NewMoney(d.Price)
		if err != nil {
			return nil, fmt.Errorf("paket[%d]: %w", i, err)
		}
		out = append(out, reference.Bundle{
			Code:     d.Code,
			Name:     d.Name,
			Contents: d.Contents,
			Price:    price,
		})
	}
	return out, nil
}

func toStockItem(dto stockDTO) (*stock.Item, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return stock.NewItem(dto.Code, stock.Attributes{
		Title:         dto.Title,
		CategoryCode:  dto.CategoryCode,
		RegionCode:    dto.RegionCode,
		ShelfLocation: dto.ShelfLocation,
		Price:         price,
		Quantity:      dto.Quantity,
		Safety:        dto.Safety,
		Note:          dto.Note,
	})
}

func (l *Loader) toDeliveryOrder(ctx context.Context, number delivery.Number, dto trackingDTO) (*delivery.DeliveryOrder, error) {
	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		l.logger.WarnContext(ctx, "unknown delivery status",
			"number", number.String(),
			"status", dto.Status,
		)
	}

	shipDate, err := l.parseTime(dateLayout, dto.ShipDate)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("tanggalKirim", err)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	progress := make([]delivery.ProgressEvent, 0, len(dto.Progress))
	for i, p := range dto.Progress {
		at, err := l.parseTime(timestampLayout, p.At)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("perjalanan[%d].waktu", i), err)
		}
		progress = append(progress, delivery.RestoreProgressEvent(at, p.Description))
	}

	return delivery.RestoreDeliveryOrder(number, delivery.Details{
		StudentID:     dto.StudentID,
		RecipientName: dto.RecipientName,
		CourierCode:   dto.CourierCode,
		BundleCode:    dto.BundleCode,
		ShipDate:      shipDate,
		Total:         total,
	}, status, progress)
}

// parseTime leaves blank values as the zero time.
func (l *Loader) parseTime(layout, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(layout, value, l.location)
}
