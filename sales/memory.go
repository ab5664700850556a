package sales

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/nicoxroll/digrazia-bros/models"
)

// MemoryLedger serves the listing from a static slice. Used by tests.
type MemoryLedger struct {
	mu   sync.RWMutex
	rows []models.Sale
}

// NewMemoryLedger copies rows and keeps them newest first, matching
// the database ordering.
func NewMemoryLedger(rows []models.Sale) *MemoryLedger {
	sorted := make([]models.Sale, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })
	return &MemoryLedger{rows: sorted}
}

func (l *MemoryLedger) List(_ context.Context, f Filter) ([]models.Sale, int64, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var matched []models.Sale
	for _, s := range l.rows {
		if f.Query != "" &&
			!strings.Contains(strings.ToLower(s.Customer), strings.ToLower(f.Query)) &&
			s.ID != f.Query {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		matched = append(matched, s)
	}

	total := int64(len(matched))
	if f.PageSize > 0 {
		start := (f.Page - 1) * f.PageSize
		if start < 0 {
			start = 0
		}
		if start >= len(matched) {
			return nil, total, nil
		}
		end := start + f.PageSize
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}
