package catalog

import (
	"log"

	"github.com/nicoxroll/digrazia-bros/models"
	"gorm.io/gorm"
)

// SeedProducts returns the showroom collection the store opens with.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Serene Cloud Sofa",
			Description: "A luxurious, modular sofa wrapped in Italian velvet for ultimate comfort. Designed for deep relaxation with cloud-soft cushioning and a hand-built hardwood frame.",
			Price:       2450,
			Category:    models.CategoryLivingRoom,
			Image:       "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?q=80&w=2070&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1555041469-a586c61ea9bc?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1493663284031-b7e3aefcae8e?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1540574163026-643ea20ade25?q=80&w=2070&auto=format&fit=crop",
			},
			Rating: 4.9,
			Stock:  12,
		},
		{
			ID:          "2",
			Name:        "Minimalist Oak Desk",
			Description: "Sustainably sourced solid oak desk with integrated cable management and a smooth hand-oiled finish. A masterpiece of functional minimalism.",
			Price:       890,
			Category:    models.CategoryOffice,
			Image:       "https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?q=80&w=1974&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?q=80&w=1974&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1493932484895-752d1471eab5?q=80&w=2070&auto=format&fit=crop",
			},
			Rating: 4.7,
			Stock:  8,
		},
		{
			ID:          "3",
			Name:        "Nordic Dining Table",
			Description: "Elegant round dining table featuring a minimalist Scandinavian design and solid ash wood construction. Perfect for gathering legacies.",
			Price:       1200,
			Category:    models.CategoryDiningRoom,
			Image:       "https://images.unsplash.com/photo-1595515106969-1ce29566ff1c?q=80&w=2070&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1595515106969-1ce29566ff1c?q=80&w=2070&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1577140917170-285929fb55b7?q=80&w=2070&auto=format&fit=crop",
			},
			Rating: 4.8,
			Stock:  4,
		},
		{
			ID:          "4",
			Name:        "Rose Quartz Lamp",
			Description: "Artisanal lamp with a hand-carved stone base and silk shade, emitting a warm, ethereal glow that transforms any room into a sanctuary.",
			Price:       240,
			Category:    models.CategoryDecor,
			Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?q=80&w=1974&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?q=80&w=1974&auto=format&fit=crop",
			},
			Rating: 4.5,
			Stock:  45,
		},
		{
			ID:          "5",
			Name:        "Ethereal Bed Frame",
			Description: "Velvet-tufted headboard with a minimalist brass-finished frame, designed for dreams and deep rest. Handcrafted for longevity.",
			Price:       1750,
			Category:    models.CategoryBedroom,
			Image:       "https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?q=80&w=2071&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1522771739844-6a9f6d5f14af?q=80&w=2071&auto=format&fit=crop",
			},
			Rating: 4.9,
			Stock:  5,
		},
		{
			ID:          "6",
			Name:        "Marble Nesting Tables",
			Description: "Set of two nesting tables with Carrara marble tops and gold accents. Perfect for dynamic living spaces and sophisticated hosting.",
			Price:       560,
			Category:    models.CategoryLivingRoom,
			Image:       "https://images.unsplash.com/photo-1533090161767-e6ffed986c88?q=80&w=2069&auto=format&fit=crop",
			Images: []string{
				"https://images.unsplash.com/photo-1533090161767-e6ffed986c88?q=80&w=2069&auto=format&fit=crop",
			},
			Rating: 4.6,
			Stock:  2,
		},
	}
}

// SeedDatabase inserts the showroom collection when the products table
// is empty, so a fresh install has something to sell.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := SeedProducts()
	if err := db.Create(&seed).Error; err != nil {
		return err
	}
	log.Println("🪑 Seeded showroom collection")
	return nil
}
