package storefront

import "strings"

// Catalog is the read-only source of sellable products
type Catalog interface {
	Products() []Product
}

type staticCatalog struct {
	products []Product
}

func NewStaticCatalog(products []Product) Catalog {
	return &staticCatalog{
		products: append([]Product{}, products...),
	}
}

func (c *staticCatalog) Products() []Product {
	return append([]Product{}, c.products...)
}

// Search returns the products whose name, description or one of its tags contains the query,
// ignoring case. A blank query returns everything. Catalog order is kept.
func Search(catalog Catalog, query string) []Product {
	products := catalog.Products()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	found := []Product{}
	for _, p := range products {
		if matches(p, q) {
			found = append(found, p)
		}
	}
	return found
}

func matches(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func findProduct(catalog Catalog, productUID string) (Product, bool) {
	for _, p := range catalog.Products() {
		if p.UID == productUID {
			return p, true
		}
	}
	return Product{}, false
}

func DefaultProducts() []Product {
	return []Product{
		{
			UID:          "cake-1",
			Name:         "Chocolate Fudge Cake",
			Description:  "Rich cocoa sponge layered with velvety fudge frosting.",
			PriceInCents: 3200,
			Image:        "https://images.unsplash.com/photo-1511920170033-f8396924c348?q=80&w=1200&auto=format&fit=crop",
			Tags:         []string{"best seller", "chocolate"},
		},
		{
			UID:          "cake-2",
			Name:         "Strawberry Shortcake",
			Description:  "Vanilla sponge, whipped cream, and fresh strawberries.",
			PriceInCents: 2900,
			Image:        "https://images.unsplash.com/photo-1490474418585-ba9bad8fd0ea?q=80&w=1200&auto=format&fit=crop",
			Tags:         []string{"seasonal", "fruit"},
		},
		{
			UID:          "cake-3",
			Name:         "Red Velvet",
			Description:  "Moist red velvet layers with classic cream cheese frosting.",
			PriceInCents: 3400,
			Image:        "https://images.unsplash.com/photo-1509365465985-25d11c17e812?q=80&w=1200&auto=format&fit=crop",
			Tags:         []string{"classic"},
		},
		{
			UID:          "cake-4",
			Name:         "Lemon Drizzle Loaf",
			Description:  "Bright lemon crumb and sweet citrus glaze.",
			PriceInCents: 2100,
			Image:        "https://images.unsplash.com/photo-1605807646983-377bc5a76493?q=80&w=1200&auto=format&fit=crop",
			Tags:         []string{"light", "citrus"},
		},
	}
}
