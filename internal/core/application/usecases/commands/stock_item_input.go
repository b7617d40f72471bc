package commands

import (
	"errors"
	"fmt"
	"strings"

	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/core/domain/model/stock"
	"sitta/internal/pkg/errs"
)

// StockItemInput is the stock form as submitted.
type StockItemInput struct {
	Code          string
	Title         string
	CategoryCode  string
	RegionCode    string
	ShelfLocation string
	Price         float64
	Quantity      int
	Safety        int
	Note          string
}

// stockItemForm is a validated StockItemInput.
type stockItemForm struct {
	code  string
	attrs stock.Attributes
}

func newStockItemForm(in StockItemInput) (stockItemForm, error) {
	code, codeErr := required("code", in.Code)
	title, titleErr := required("title", in.Title)
	category, categoryErr := required("category", in.CategoryCode)
	region, regionErr := required("region", in.RegionCode)
	shelf, shelfErr := required("shelfLocation", in.ShelfLocation)

	var priceErr error
	price, err := kernel.NewMoneyFromFloat(in.Price)
	switch {
	case err != nil:
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", err)
	case !price.IsPositive():
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", in.Price))
	}

	if err := errors.Join(
		codeErr,
		titleErr,
		categoryErr,
		regionErr,
		shelfErr,
		priceErr,
		nonNegative("quantity", in.Quantity),
		nonNegative("safety", in.Safety),
	); err != nil {
		return stockItemForm{}, err
	}

	attrs := stock.Attributes{
		Title:         title,
		CategoryCode:  category,
		RegionCode:    region,
		ShelfLocation: shelf,
		Price:         price,
		Quantity:      in.Quantity,
		Safety:        in.Safety,
		Note:          strings.TrimSpace(in.Note),
	}
	return stockItemForm{code: code, attrs: attrs}, nil
}
