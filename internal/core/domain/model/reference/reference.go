package reference

import "sitta/internal/core/domain/model/kernel"

// Region is a regional distribution office (UPBJJ).
type Region struct {
	Code string
	Name string
}

// Category groups teaching materials.
type Category struct {
	Code string
	Name string
}

// Courier is a shipping service an order can be dispatched with.
type Courier struct {
	Code string
	Name string
}

// Bundle is a priced package of stock items, referenced by code.
type Bundle struct {
	Code     string
	Name     string
	Contents []string
	Price    kernel.Money
}

// BundleItem is one resolved entry of a bundle's contents.
type BundleItem struct {
	Code  string
	Title string
}
