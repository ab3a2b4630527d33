// Package catalog holds the product catalog. Products are fixture data; the
// admin CRUD operations mutate only the in-memory copy and are never
// persisted, so a restart restores the fixtures.
package catalog

import (
	"strings"
	"sync"

	"phihorizon/models"
)

// Catalog is an in-memory product list safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	products []models.Product
}

// New returns a catalog seeded with the fixture products.
func New() *Catalog {
	return &Catalog{products: append([]models.Product{}, fixtureProducts...)}
}

// Filter narrows List results. Zero values match everything.
type Filter struct {
	Category string
	Search   string
	Featured bool
}

// List returns the products matching the filter.
func (c *Catalog) List(f Filter) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Featured && !p.Featured {
			continue
		}
		if f.Search != "" && !matchesSearch(p, f.Search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesSearch(p models.Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// ByID looks up a product.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Add appends a product.
func (c *Catalog) Add(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append(c.products, p)
}

// Update replaces the product with the matching id.
func (c *Catalog) Update(p models.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return true
		}
	}
	return false
}

// Delete removes the product with the matching id.
func (c *Catalog) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}
