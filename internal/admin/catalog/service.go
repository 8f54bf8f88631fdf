package catalog

import (
	"context"
	"errors"
)

// ErrProductNotFound is returned when the referenced product does not exist.
var ErrProductNotFound = errors.New("catalog: product not found")

// Service exposes the remote product CRUD surface used by the admin UI.
// Every call carries the operator's bearer token explicitly; there is no
// process-wide default credential.
type Service interface {
	// List returns the full product list. The cache layer replaces its
	// contents wholesale with the result.
	List(ctx context.Context, token string) ([]Product, error)

	// Create stores a new product; the server assigns the ID.
	Create(ctx context.Context, token string, product Product) error

	// Update replaces the product identified by product.ID.
	Update(ctx context.Context, token string, product Product) error

	// Delete removes the product with the given ID.
	Delete(ctx context.Context, token, id string) error
}
