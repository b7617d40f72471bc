package datafile_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"sitta/internal/adapters/out/datafile"
	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/model/stock"
	"sitta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoader() *datafile.Loader {
	return datafile.NewLoader(time.UTC, nil)
}

func TestLoader_LoadFile(t *testing.T) {
	ds, err := newLoader().LoadFile(context.Background(), "testdata/data.json")
	require.NoError(t, err)

	t.Run("should accept plain and keyed reference entries", func(t *testing.T) {
		regions := ds.Catalog.Regions()
		require.Len(t, regions, 2)
		assert.Equal(t, "Jakarta", regions[0].Name)
		assert.Equal(t, "UPBJJ Surabaya", ds.Catalog.RegionName("Surabaya"))
		assert.Equal(t, "Reguler (3-5 hari)", ds.Catalog.CourierName("REG"))

		bundle, ok := ds.Catalog.Bundle("PAKET-UT-001")
		require.True(t, ok)
		assert.Equal(t, []string{"EKMA4116", "EKMA4115"}, bundle.Contents)
		assert.Equal(t, "120000", bundle.Price.String())
	})

	t.Run("should build stock items with derived status", func(t *testing.T) {
		require.Len(t, ds.Stock, 2)
		assert.Equal(t, "EKMA4116", ds.Stock[0].Code())
		assert.Equal(t, stock.Safe, ds.Stock[0].Status())
		assert.Equal(t, "<em>Edisi 2024</em>", ds.Stock[0].Note())
		assert.Equal(t, stock.Low, ds.Stock[1].Status())
		assert.Equal(t, "60000.5", ds.Stock[1].Price().String())
	})

	t.Run("should flatten tracking and skip invalid numbers", func(t *testing.T) {
		require.Len(t, ds.Orders, 2)

		first := ds.Orders[0]
		assert.Equal(t, "DO2025-0001", first.Number().String())
		assert.Equal(t, delivery.InTransit, first.Status())
		assert.Equal(t, "Rina Wulandari", first.RecipientName())
		assert.Equal(t, time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), first.ShipDate())
		require.Len(t, first.Progress(), 2)
		assert.Equal(t, time.Date(2025, 8, 25, 14, 7, 56, 0, time.UTC), first.Progress()[1].At())
		assert.Equal(t, "Tiba di Hub: JAKSEL", first.Progress()[1].Description())

		second := ds.Orders[1]
		assert.Equal(t, "DO2025-0002", second.Number().String())
		assert.Equal(t, delivery.Unknown, second.Status(), "unrecognised status should load as unknown")
		assert.Empty(t, second.Progress())
	})
}

func TestLoader_Decode(t *testing.T) {
	tests := map[string]struct {
		doc     string
		wantErr string
	}{
		"tracking entry with two keys": {
			doc:     `{"tracking": [{"DO2025-0001": {}, "DO2025-0002": {}}]}`,
			wantErr: "tracking[0]",
		},
		"tracking entry that is not an object": {
			doc:     `{"tracking": [["DO2025-0001"]]}`,
			wantErr: "tracking[0]",
		},
		"empty tracking object": {
			doc:     `{"tracking": [{}]}`,
			wantErr: "single order number key",
		},
		"bad progress timestamp": {
			doc:     `{"tracking": [{"DO2025-0001": {"perjalanan": [{"waktu": "25/08/2025", "keterangan": "x"}]}}]}`,
			wantErr: "perjalanan[0].waktu",
		},
		"invalid stock entry": {
			doc:     `{"stok": [{"kode": "EKMA4116", "harga": 1000, "qty": -1}]}`,
			wantErr: "stok[0]",
		},
		"malformed json": {
			doc:     `{"stok": [`,
			wantErr: "decode data document",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := newLoader().Decode(context.Background(), strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	t.Run("should load an empty document", func(t *testing.T) {
		ds, err := newLoader().Decode(context.Background(), strings.NewReader(`{}`))

		require.NoError(t, err)
		assert.Empty(t, ds.Stock)
		assert.Empty(t, ds.Orders)
		assert.Empty(t, ds.Catalog.Regions())
	})

	t.Run("should report invalid ship date", func(t *testing.T) {
		_, err := newLoader().Decode(context.Background(),
			strings.NewReader(`{"tracking": [{"DO2025-0001": {"tanggalKirim": "kemarin"}}]}`))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLoader_LoadFile_Missing(t *testing.T) {
	_, err := newLoader().LoadFile(context.Background(), "testdata/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open data file")
}
