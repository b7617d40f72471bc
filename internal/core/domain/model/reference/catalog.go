package reference

import "slices"

// Catalog indexes the reference lists by code. The first entry wins when a code
// is listed twice.
type Catalog struct {
	regions    []Region
	categories []Category
	couriers   []Courier
	bundles    []Bundle

	regionByCode   map[string]Region
	categoryByCode map[string]Category
	courierByCode  map[string]Courier
	bundleByCode   map[string]Bundle
}

func NewCatalog(regions []Region, categories []Category, couriers []Courier, bundles []Bundle) *Catalog {
	c := &Catalog{
		regions:        slices.Clone(regions),
		categories:     slices.Clone(categories),
		couriers:       slices.Clone(couriers),
		bundles:        make([]Bundle, 0, len(bundles)),
		regionByCode:   make(map[string]Region, len(regions)),
		categoryByCode: make(map[string]Category, len(categories)),
		courierByCode:  make(map[string]Courier, len(couriers)),
		bundleByCode:   make(map[string]Bundle, len(bundles)),
	}

	for _, r := range regions {
		if _, ok := c.regionByCode[r.Code]; !ok {
			c.regionByCode[r.Code] = r
		}
	}
	for _, cat := range categories {
		if _, ok := c.categoryByCode[cat.Code]; !ok {
			c.categoryByCode[cat.Code] = cat
		}
	}
	for _, cr := range couriers {
		if _, ok := c.courierByCode[cr.Code]; !ok {
			c.courierByCode[cr.Code] = cr
		}
	}
	for _, b := range bundles {
		b.Contents = slices.Clone(b.Contents)
		c.bundles = append(c.bundles, b)
		if _, ok := c.bundleByCode[b.Code]; !ok {
			c.bundleByCode[b.Code] = b
		}
	}

	return c
}

func (c *Catalog) Regions() []Region      { return slices.Clone(c.regions) }
func (c *Catalog) Categories() []Category { return slices.Clone(c.categories) }
func (c *Catalog) Couriers() []Courier    { return slices.Clone(c.couriers) }
func (c *Catalog) Bundles() []Bundle      { return cloneBundles(c.bundles) }

func (c *Catalog) Region(code string) (Region, bool) {
	r, ok := c.regionByCode[code]
	return r, ok
}

func (c *Catalog) Category(code string) (Category, bool) {
	cat, ok := c.categoryByCode[code]
	return cat, ok
}

func (c *Catalog) Courier(code string) (Courier, bool) {
	cr, ok := c.courierByCode[code]
	return cr, ok
}

func (c *Catalog) Bundle(code string) (Bundle, bool) {
	b, ok := c.bundleByCode[code]
	if ok {
		b.Contents = slices.Clone(b.Contents)
	}
	return b, ok
}

// RegionName returns the display name, or code when unresolved.
func (c *Catalog) RegionName(code string) string {
	if r, ok := c.regionByCode[code]; ok && r.Name != "" {
		return r.Name
	}
	return code
}

// CategoryName returns the display name, or code when unresolved.
func (c *Catalog) CategoryName(code string) string {
	if cat, ok := c.categoryByCode[code]; ok && cat.Name != "" {
		return cat.Name
	}
	return code
}

// CourierName returns the display name, or code when unresolved.
func (c *Catalog) CourierName(code string) string {
	if cr, ok := c.courierByCode[code]; ok && cr.Name != "" {
		return cr.Name
	}
	return code
}

// BundleName returns the display name, or code when unresolved.
func (c *Catalog) BundleName(code string) string {
	if b, ok := c.bundleByCode[code]; ok && b.Name != "" {
		return b.Name
	}
	return code
}

// BundleContents resolves each content code of the bundle to a stock title.
// Codes absent from titles keep the code as their title.
func BundleContents(bundle Bundle, titles map[string]string) []BundleItem {
	items := make([]BundleItem, 0, len(bundle.Contents))
	for _, code := range bundle.Contents {
		title, ok := titles[code]
		if !ok || title == "" {
			title = code
		}
		items = append(items, BundleItem{Code: code, Title: title})
	}
	return items
}

func cloneBundles(bundles []Bundle) []Bundle {
	out := make([]Bundle, len(bundles))
	for i, b := range bundles {
		b.Contents = slices.Clone(b.Contents)
		out[i] = b
	}
	return out
}
