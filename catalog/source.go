package catalog

import (
	"context"
	"errors"

	"github.com/nicoxroll/digrazia-bros/models"
)

// ErrNotFound is returned when no product exists for the given id.
var ErrNotFound = errors.New("product not found")

// Filter narrows a catalog listing.
type Filter struct {
	Category string // exact category name, empty for all
	Query    string // case-insensitive substring of the product name
}

// Source serves the product catalog. The cart and checkout layers only
// ever read products through this interface; whether the backing is
// Postgres or a static in-memory list is invisible to them.
type Source interface {
	List(ctx context.Context, f Filter) ([]models.Product, error)
	Get(ctx context.Context, id string) (models.Product, error)
}
