package sales

import (
	"context"

	"github.com/nicoxroll/digrazia-bros/models"
	"gorm.io/gorm"
)

// GormLedger reads the ledger from the sales table.
type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

func (l *GormLedger) List(ctx context.Context, f Filter) ([]models.Sale, int64, error) {
	q := l.db.WithContext(ctx).Model(&models.Sale{}).Order("date DESC")
	if f.Query != "" {
		q = q.Where("customer ILIKE ? OR id = ?", "%"+f.Query+"%", f.Query)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Sale
	if err := q.Offset((f.Page - 1) * f.PageSize).Limit(f.PageSize).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
