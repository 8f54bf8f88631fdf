package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// StaticService is an in-memory Service used in local development and tests.
// IDs are assigned on create, matching the backend contract.
type StaticService struct {
	mu       sync.Mutex
	products []Product
}

// NewStaticService returns a StaticService seeded with the given products.
// Seed records without an ID get one assigned.
func NewStaticService(seed ...Product) *StaticService {
	svc := &StaticService{}
	for _, p := range seed {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		svc.products = append(svc.products, p.Clone())
	}
	return svc
}

// List returns a copy of the stored products.
func (s *StaticService) List(_ context.Context, _ string) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p.Clone())
	}
	return out, nil
}

// Create stores the product under a freshly assigned ID.
func (s *StaticService) Create(_ context.Context, _ string, product Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = uuid.NewString()
	s.products = append(s.products, product.Clone())
	return nil
}

// Update replaces the stored product with the same ID.
func (s *StaticService) Update(_ context.Context, _ string, product Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = product.Clone()
			return nil
		}
	}
	return ErrProductNotFound
}

// Delete removes the stored product with the given ID.
func (s *StaticService) Delete(_ context.Context, _ string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}
