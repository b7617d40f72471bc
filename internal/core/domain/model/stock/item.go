package stock

import (
	"errors"
	"fmt"
	"strings"

	"sitta/internal/core/domain/model/kernel"
	"sitta/internal/pkg/errs"
	"sitta/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item bypassed NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Attributes are the mutable fields of an Item. Code is the identity and is not
// part of it.
type Attributes struct {
	Title         string
	CategoryCode  string
	RegionCode    string
	ShelfLocation string
	Price         kernel.Money
	Quantity      int
	Safety        int
	Note          string
}

// Item is one stock line of teaching material.
//
// Invariants:
//   - code is non-empty and never changes
//   - price is a constructed, non-negative Money
//   - quantity and safety are never negative
type Item struct {
	code  string
	attrs Attributes
	guard guard.ConstructorGuard
}

// NewItem validates and builds an item. All attribute errors are reported together.
func NewItem(code string, attrs Attributes) (*Item, error) {
	item := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setCode(code),
		validateAttributes(attrs),
	); err != nil {
		return nil, err
	}

	item.attrs = normalize(attrs)
	return item, nil
}

// Validate ensures the item was built by NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Update replaces the attributes in place. The item is left untouched when
// validation fails.
func (i *Item) Update(attrs Attributes) error {
	if err := validateAttributes(attrs); err != nil {
		return err
	}
	i.attrs = normalize(attrs)
	return nil
}

// Clone returns an independent copy.
func (i *Item) Clone() *Item {
	c := *i
	return &c
}

func (i *Item) Code() string          { return i.code }
func (i *Item) Title() string         { return i.attrs.Title }
func (i *Item) CategoryCode() string  { return i.attrs.CategoryCode }
func (i *Item) RegionCode() string    { return i.attrs.RegionCode }
func (i *Item) ShelfLocation() string { return i.attrs.ShelfLocation }
func (i *Item) Price() kernel.Money   { return i.attrs.Price }
func (i *Item) Quantity() int         { return i.attrs.Quantity }
func (i *Item) Safety() int           { return i.attrs.Safety }
func (i *Item) Note() string          { return i.attrs.Note }

// Attributes returns a copy of the mutable fields.
func (i *Item) Attributes() Attributes { return i.attrs }

// Status derives the item's classification from quantity and safety.
func (i *Item) Status() Status {
	return Classify(i.attrs.Quantity, i.attrs.Safety)
}

func (i *Item) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	i.code = code
	return nil
}

func validateAttributes(attrs Attributes) error {
	var priceErr error
	if err := attrs.Price.Validate(); err != nil {
		priceErr = errs.NewValueIsRequiredErrorWithCause("price", err)
	}

	var qtyErr, safetyErr error
	if attrs.Quantity < 0 {
		qtyErr = errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is negative", attrs.Quantity))
	}
	if attrs.Safety < 0 {
		safetyErr = errs.NewValueIsInvalidErrorWithCause("safety", fmt.Errorf("%d is negative", attrs.Safety))
	}

	return errors.Join(priceErr, qtyErr, safetyErr)
}

func normalize(attrs Attributes) Attributes {
	attrs.Title = strings.TrimSpace(attrs.Title)
	attrs.CategoryCode = strings.TrimSpace(attrs.CategoryCode)
	attrs.RegionCode = strings.TrimSpace(attrs.RegionCode)
	attrs.ShelfLocation = strings.TrimSpace(attrs.ShelfLocation)
	return attrs
}
