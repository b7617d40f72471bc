package datafile

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// documentDTO mirrors the static data document.
type documentDTO struct {
	Regions    []codeNameDTO     `json:"upbjjList"`
	Categories []codeNameDTO     `json:"kategoriList"`
	Couriers   []codeNameDTO     `json:"pengirimanList"`
	Bundles    []bundleDTO       `json:"paket"`
	Stock      []stockDTO        `json:"stok"`
	Tracking   []json.RawMessage `json:"tracking"`
}

// codeNameDTO accepts either a bare string, used as both code and name, or an
// object with kode and nama.
type codeNameDTO struct {
	Code string `json:"kode"`
	Name string `json:"nama"`
}

func (d *codeNameDTO) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		d.Code, d.Name = s, s
		return nil
	}

	type plain codeNameDTO
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.Name == "" {
		p.Name = p.Code
	}
	*d = codeNameDTO(p)
	return nil
}

type bundleDTO struct {
	Code     string          `json:"kode"`
	Name     string          `json:"nama"`
	Contents []string        `json:"isi"`
	Price    decimal.Decimal `json:"harga"`
}

type stockDTO struct {
	Code          string          `json:"kode"`
	Title         string          `json:"judul"`
	CategoryCode  string          `json:"kategori"`
	RegionCode    string          `json:"upbjj"`
	ShelfLocation string          `json:"lokasiRak"`
	Price         decimal.Decimal `json:"harga"`
	Quantity      int             `json:"qty"`
	Safety        int             `json:"safety"`
	Note          string          `json:"catatanHTML"`
}

type trackingDTO struct {
	StudentID     string          `json:"nim"`
	RecipientName string          `json:"nama"`
	Status        string          `json:"status"`
	CourierCode   string          `json:"ekspedisi"`
	ShipDate      string          `json:"tanggalKirim"`
	BundleCode    string          `json:"paket"`
	Total         decimal.Decimal `json:"total"`
	Progress      []progressDTO   `json:"perjalanan"`
}

type progressDTO struct {
	At          string `json:"waktu"`
	Description string `json:"keterangan"`
}

// flatTrackingDTO is one tracking entry with its key pulled in as the number.
type flatTrackingDTO struct {
	Number string
	trackingDTO
}

// flattenTracking turns {"<number>": {...}} into a flat record. Anything other
// than an object with exactly one key is rejected.
func flattenTracking(raw json.RawMessage) (flatTrackingDTO, error) {
	var entry map[string]trackingDTO
	if err := json.Unmarshal(raw, &entry); err != nil {
		return flatTrackingDTO{}, err
	}
	if len(entry) != 1 {
		return flatTrackingDTO{}, fmt.Errorf("want an object with a single order number key, got %d keys", len(entry))
	}
	var flat flatTrackingDTO
	for number, data := range entry {
		flat = flatTrackingDTO{Number: number, trackingDTO: data}
	}
	return flat, nil
}
