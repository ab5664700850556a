package sales

import (
	"context"

	"github.com/nicoxroll/digrazia-bros/models"
)

// Filter narrows a ledger listing.
type Filter struct {
	Query    string            // customer substring or exact sale id
	Status   models.SaleStatus // empty for all
	Page     int               // 1-based
	PageSize int
}

// Ledger serves the back-office sales listing. The handler reads
// through this interface so the search and pagination behavior can be
// tested without Postgres.
type Ledger interface {
	List(ctx context.Context, f Filter) ([]models.Sale, int64, error)
}
