package stock_test

import (
	"fmt"
	"testing"

	"sitta/internal/core/domain/model/stock"
	"sitta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("scenarios", func(t *testing.T) {
		assert.Equal(t, stock.Empty, stock.Classify(0, 5))
		assert.Equal(t, stock.Low, stock.Classify(3, 5))
		assert.Equal(t, stock.Safe, stock.Classify(10, 5))
	})

	t.Run("holds for every quantity and safety pair", func(t *testing.T) {
		for safety := 0; safety <= 12; safety++ {
			for qty := 0; qty <= 12; qty++ {
				got := stock.Classify(qty, safety)

				switch {
				case qty == 0:
					assert.Equal(t, stock.Empty, got, "qty=%d safety=%d", qty, safety)
				case qty < safety:
					assert.Equal(t, stock.Low, got, "qty=%d safety=%d", qty, safety)
				default:
					assert.Equal(t, stock.Safe, got, "qty=%d safety=%d", qty, safety)
				}
			}
		}
	})

	t.Run("zero safety with stock on hand is safe", func(t *testing.T) {
		assert.Equal(t, stock.Safe, stock.Classify(1, 0))
	})

	t.Run("quantity equal to safety is safe", func(t *testing.T) {
		assert.Equal(t, stock.Safe, stock.Classify(5, 5))
	})
}

func TestParseStatus(t *testing.T) {
	cases := map[string]stock.Status{
		"empty":   stock.Empty,
		"Kosong":  stock.Empty,
		" low ":   stock.Low,
		"MENIPIS": stock.Low,
		"safe":    stock.Safe,
		"aman":    stock.Safe,
	}

	for input, want := range cases {
		t.Run(fmt.Sprintf("parses %q", input), func(t *testing.T) {
			got, err := stock.ParseStatus(input)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := stock.ParseStatus("plenty")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"plenty"`)
	})
}

func TestStatus_StringAndLabel(t *testing.T) {
	assert.Equal(t, "empty", stock.Empty.String())
	assert.Equal(t, "Menipis", stock.Low.Label())
	assert.Equal(t, "Aman", stock.Safe.Label())
	assert.Equal(t, "unknown", stock.Unknown.String())
	assert.Equal(t, "unknown", stock.Status(42).Label())

	require.NoError(t, stock.Safe.Validate())
	require.Error(t, stock.Unknown.Validate())
}
