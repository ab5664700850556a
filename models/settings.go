package models

import "time"

// Settings is the single-row studio configuration edited from the
// back-office settings page.
type Settings struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	StudioName      string    `json:"studio_name"`
	LegalHQ         string    `json:"legal_hq"`
	Tagline         string    `json:"tagline"`
	AIEnabled       bool      `json:"ai_enabled"`
	MaintenanceMode bool      `json:"maintenance_mode"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// DefaultSettings returns the values the store ships with.
func DefaultSettings() Settings {
	return Settings{
		ID:         1,
		StudioName: "Digrazia Brothers",
		LegalHQ:    "La Plata, Buenos Aires",
		Tagline:    "Artisanal furniture crafted with soul. Experience the perfect harmony of nature and design.",
		AIEnabled:  true,
	}
}
