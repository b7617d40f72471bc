package commands_test

import (
	"testing"

	"sitta/internal/core/application/usecases/commands"
	"sitta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStockInput() commands.StockItemInput {
	return commands.StockItemInput{
		Code:          " EKMA4116 ",
		Title:         "Pengantar Manajemen",
		CategoryCode:  "MK Wajib",
		RegionCode:    "Jakarta",
		ShelfLocation: "R1-A3",
		Price:         65000,
		Quantity:      28,
		Safety:        20,
		Note:          "<i>Edisi 2024</i>",
	}
}

func TestNewAddStockItemCommand(t *testing.T) {
	t.Run("should accept a valid form", func(t *testing.T) {
		cmd, err := commands.NewAddStockItemCommand(validStockInput())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "EKMA4116", cmd.Code())
		assert.Equal(t, "R1-A3", cmd.Attributes().ShelfLocation)
		assert.Equal(t, "65000", cmd.Attributes().Price.Amount().String())
	})

	t.Run("should report all missing fields", func(t *testing.T) {
		_, err := commands.NewAddStockItemCommand(commands.StockItemInput{Price: 1})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"code", "title", "category", "region", "shelfLocation"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("should require a positive price", func(t *testing.T) {
		in := validStockInput()
		in.Price = 0

		_, err := commands.NewAddStockItemCommand(in)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should reject negative price", func(t *testing.T) {
		in := validStockInput()
		in.Price = -10

		_, err := commands.NewAddStockItemCommand(in)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative quantity and safety", func(t *testing.T) {
		in := validStockInput()
		in.Quantity = -1
		in.Safety = -1

		_, err := commands.NewAddStockItemCommand(in)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "safety")
	})

	t.Run("zero quantity is allowed", func(t *testing.T) {
		in := validStockInput()
		in.Quantity = 0
		in.Safety = 0

		_, err := commands.NewAddStockItemCommand(in)

		require.NoError(t, err)
	})

	t.Run("unconstructed command fails validation", func(t *testing.T) {
		err := commands.AddStockItemCommand{}.Validate()
		require.ErrorIs(t, err, commands.ErrAddStockItemCommandIsNotConstructed)
	})
}

func TestNewUpdateStockItemCommand(t *testing.T) {
	cmd, err := commands.NewUpdateStockItemCommand(validStockInput())
	require.NoError(t, err)
	assert.Equal(t, "EKMA4116", cmd.Code())

	require.ErrorIs(t,
		commands.UpdateStockItemCommand{}.Validate(),
		commands.ErrUpdateStockItemCommandIsNotConstructed)
}

func TestNewDeleteStockItemCommand(t *testing.T) {
	cmd, err := commands.NewDeleteStockItemCommand(" EKMA4116 ")
	require.NoError(t, err)
	assert.Equal(t, "EKMA4116", cmd.Code())

	_, err = commands.NewDeleteStockItemCommand("  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
