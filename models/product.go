package models

import (
	"time"

	"gorm.io/gorm"
)

type Category string

const (
	CategoryLivingRoom Category = "Living Room"
	CategoryBedroom    Category = "Bedroom"
	CategoryDiningRoom Category = "Dining Room"
	CategoryOffice     Category = "Office"
	CategoryDecor      Category = "Decor"
)

// ValidCategory reports whether s is one of the store's categories.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryLivingRoom, CategoryBedroom, CategoryDiningRoom, CategoryOffice, CategoryDecor:
		return true
	}
	return false
}

type Product struct {
	ID          string         `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Category    Category       `gorm:"type:VARCHAR(20);not null" json:"category"`
	Image       string         `gorm:"not null" json:"image"` // primary image URL
	Images      []string       `gorm:"serializer:json" json:"images,omitempty"`
	Rating      float64        `json:"rating"`
	Stock       int            `json:"stock"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
