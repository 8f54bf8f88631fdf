package catalog

import (
	"context"
	"sync"
)

// Cache holds the operator's view of the product list. Refresh replaces the
// contents wholesale; a failed refresh leaves the previous contents in place
// so the UI keeps rendering stale data rather than nothing.
type Cache struct {
	mu       sync.RWMutex
	service  Service
	products []Product
}

// NewCache wraps the given Service with an empty cache.
func NewCache(service Service) *Cache {
	return &Cache{service: service}
}

// Refresh fetches the full product list and swaps it in. On error the cache
// is left untouched.
func (c *Cache) Refresh(ctx context.Context, token string) error {
	products, err := c.service.List(ctx, token)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()
	return nil
}

// Products returns a copy of the cached list.
func (c *Cache) Products() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Clone())
	}
	return out
}

// Find returns the cached product with the given ID.
func (c *Cache) Find(id string) (Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return Product{}, false
}
