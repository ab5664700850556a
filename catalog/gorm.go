package catalog

import (
	"context"
	"errors"

	"github.com/nicoxroll/digrazia-bros/models"
	"gorm.io/gorm"
)

// GormSource reads the catalog from the products table.
type GormSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) *GormSource {
	return &GormSource{db: db}
}

func (s *GormSource) List(ctx context.Context, f Filter) ([]models.Product, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Query != "" {
		q = q.Where("name ILIKE ?", "%"+f.Query+"%")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormSource) Get(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}
