package services_test

import (
	"testing"

	"sitta/internal/core/domain/model/delivery"
	"sitta/internal/core/domain/services"
	"sitta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(ss ...string) []delivery.Number {
	out := make([]delivery.Number, 0, len(ss))
	for _, s := range ss {
		out = append(out, delivery.MustParseNumber(s))
	}
	return out
}

func TestNumberGenerator_Next(t *testing.T) {
	gen := services.NewNumberGenerator()

	tests := map[string]struct {
		existing []delivery.Number
		year     int
		want     string
	}{
		"continues after greatest of year": {
			existing: numbers("DO2024-0001", "DO2024-0003"),
			year:     2024,
			want:     "DO2024-0004",
		},
		"first of a new year": {
			existing: numbers("DO2024-0001", "DO2024-0003"),
			year:     2025,
			want:     "DO2025-0001",
		},
		"empty collection": {
			year: 2025,
			want: "DO2025-0001",
		},
		"numeric not lexicographic": {
			existing: numbers("DO2024-9999", "DO2024-10000", "DO2024-0002"),
			year:     2024,
			want:     "DO2024-10001",
		},
		"rolls over four digits": {
			existing: numbers("DO2024-9999"),
			year:     2024,
			want:     "DO2024-10000",
		},
		"ignores other years when picking max": {
			existing: numbers("DO2023-0500", "DO2024-0002"),
			year:     2024,
			want:     "DO2024-0003",
		},
		"skips unconstructed numbers": {
			existing: []delivery.Number{{}},
			year:     2024,
			want:     "DO2024-0001",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := gen.Next(tc.existing, tc.year)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}

	t.Run("should be deterministic", func(t *testing.T) {
		existing := numbers("DO2024-0001")

		first, _ := gen.Next(existing, 2024)
		second, _ := gen.Next(existing, 2024)

		assert.True(t, first.IsEqual(second))
		assert.Len(t, existing, 1)
	})

	t.Run("should reject invalid year", func(t *testing.T) {
		_, err := gen.Next(nil, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
