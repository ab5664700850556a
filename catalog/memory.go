package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/nicoxroll/digrazia-bros/models"
)

// MemorySource serves the catalog from a static product list. Used when
// the store runs without a database and by tests.
type MemorySource struct {
	mu       sync.RWMutex
	products []models.Product
}

// NewMemorySource seeds the source with the showroom collection.
func NewMemorySource() *MemorySource {
	return &MemorySource{products: SeedProducts()}
}

func NewMemorySourceWith(products []models.Product) *MemorySource {
	return &MemorySource{products: products}
}

func (s *MemorySource) List(_ context.Context, f Filter) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Product
	for _, p := range s.products {
		if f.Category != "" && string(p.Category) != f.Category {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, p)
	}
	// Newest first, matching the database ordering.
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *MemorySource) Get(_ context.Context, id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}
