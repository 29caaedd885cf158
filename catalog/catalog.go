// Package catalog provides the read-only product reference data consumed
// by the cart and order stores. A Catalog is immutable after construction;
// the demo catalog carries the same seed products the original app shipped
// with so persisted demo carts and orders resolve.
package catalog

import "strings"

// Product is one purchasable catalog record. Price is in whole currency
// units (the demo shows rupees with no minor units).
type Product struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	Price       int64  `json:"price"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// Catalog holds an ordered product list with a by-ID index.
// Read-only after New.
type Catalog struct {
	products []Product
	byID     map[string]Product
}

// New builds a catalog from an ordered product list. Later duplicates of
// an ID are ignored; the first occurrence wins.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	for _, p := range products {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return c
}

// ByID resolves a product reference. ok is false for unknown IDs; callers
// treat unresolved references leniently (zero price, absent display).
func (c *Catalog) ByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns the catalog in seed order. The slice is a copy.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the distinct categories in first-seen order
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// Filter returns products matching a category and a free-text query.
// Empty category matches everything; the query is a case-insensitive
// substring match over title and description.
func (c *Catalog) Filter(category, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Product
	for _, p := range c.products {
		if category != "" && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
