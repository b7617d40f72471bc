package notifier

import (
	"encoding/json"
	"fmt"
	"time"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/stock"
	"sitta/internal/core/ports"

	"github.com/google/uuid"
)

const envelopeVersion = 1

// Envelope is the JSON message published for each committed change.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}

type StockItemPayload struct {
	Code          string  `json:"code"`
	Title         string  `json:"title"`
	CategoryCode  string  `json:"category_code"`
	RegionCode    string  `json:"region_code"`
	ShelfLocation string  `json:"shelf_location"`
	Price         string  `json:"price"`
	Quantity      int     `json:"quantity"`
	Safety        int     `json:"safety"`
	Status        string  `json:"status"`
	Note          *string `json:"note,omitempty"`
}

type ProgressPayload struct {
	At          time.Time `json:"at"`
	Description string    `json:"description"`
}

type DeliveryOrderPayload struct {
	Number        string            `json:"number"`
	StudentID     string            `json:"student_id"`
	RecipientName string            `json:"recipient_name"`
	Status        string            `json:"status"`
	CourierCode   string            `json:"courier_code"`
	BundleCode    string            `json:"bundle_code"`
	ShipDate      string            `json:"ship_date"`
	Total         string            `json:"total"`
	Progress      []ProgressPayload `json:"progress"`
}

// EventType names a change, e.g. "stock.created".
func EventType(c ports.Change) string {
	return fmt.Sprintf("%s.%s", c.Entity, c.Action)
}

// NewEnvelope wraps c. Deletions carry no payload.
func NewEnvelope(c ports.Change, producer string) (Envelope, error) {
	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventType(c),
		EventVersion:  envelopeVersion,
		OccurredAt:    c.At.UTC(),
		Producer:      producer,
		CorrelationID: c.Key,
	}

	var payload any
	switch {
	case c.StockItem != nil:
		payload = newStockItemPayload(c.StockItem)
	case c.DeliveryOrder != nil:
		payload = newDeliveryOrderPayload(c.DeliveryOrder)
	default:
		return env, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("encode %s payload: %w", env.EventType, err)
	}
	env.Payload = raw
	return env, nil
}

func newStockItemPayload(item *stock.Item) StockItemPayload {
	p := StockItemPayload{
		Code:          item.Code(),
		Title:         item.Title(),
		CategoryCode:  item.CategoryCode(),
		RegionCode:    item.RegionCode(),
		ShelfLocation: item.ShelfLocation(),
		Price:         item.Price().String(),
		Quantity:      item.Quantity(),
		Safety:        item.Safety(),
		Status:        item.Status().String(),
	}
	if note := item.Note(); note != "" {
		p.Note = &note
	}
	return p
}

func newDeliveryOrderPayload(o *delivery.DeliveryOrder) DeliveryOrderPayload {
	progress := make([]ProgressPayload, 0, len(o.Progress()))
	for _, e := range o.Progress() {
		progress = append(progress, ProgressPayload{At: e.At(), Description: e.Description()})
	}

	var shipDate string
	if !o.ShipDate().IsZero() {
		shipDate = o.ShipDate().Format(time.DateOnly)
	}

	return DeliveryOrderPayload{
		Number:        o.Number().String(),
		StudentID:     o.StudentID(),
		RecipientName: o.RecipientName(),
		Status:        o.Status().String(),
		CourierCode:   o.CourierCode(),
		BundleCode:    o.BundleCode(),
		ShipDate:      shipDate,
		Total:         o.Total().String(),
		Progress:      progress,
	}
}
