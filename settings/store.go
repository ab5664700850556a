package settings

import (
	"sync"

	"github.com/nicoxroll/digrazia-bros/models"
	"gorm.io/gorm"
)

// Store caches the single studio settings row so the maintenance and
// concierge middleware do not hit the database on every request.
type Store struct {
	mu      sync.RWMutex
	db      *gorm.DB
	current models.Settings
}

// NewStore loads the settings row, creating the defaults on first boot.
func NewStore(db *gorm.DB) (*Store, error) {
	s := &Store{db: db, current: models.DefaultSettings()}
	if db == nil {
		return s, nil
	}

	var row models.Settings
	err := db.First(&row, 1).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		row = models.DefaultSettings()
		if err := db.Create(&row).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}
	s.current = row
	return s, nil
}

// NewMemoryStore returns a database-free store, used by tests.
func NewMemoryStore(initial models.Settings) *Store {
	initial.ID = 1
	return &Store{current: initial}
}

// Current returns the active settings.
func (s *Store) Current() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update persists the new values and refreshes the cache. A failed save
// leaves the previous settings untouched.
func (s *Store) Update(updated models.Settings) (models.Settings, error) {
	updated.ID = 1
	if s.db != nil {
		if err := s.db.Save(&updated).Error; err != nil {
			return s.Current(), err
		}
	}

	s.mu.Lock()
	s.current = updated
	s.mu.Unlock()
	return updated, nil
}
