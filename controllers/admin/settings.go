package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/models"
	"github.com/nicoxroll/digrazia-bros/settings"
)

// GET /admin/settings
func GetSettings(store *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Current())
	}
}

type SettingsInput struct {
	StudioName      string `json:"studio_name" binding:"required"`
	LegalHQ         string `json:"legal_hq"`
	Tagline         string `json:"tagline"`
	AIEnabled       *bool  `json:"ai_enabled" binding:"required"`
	MaintenanceMode *bool  `json:"maintenance_mode" binding:"required"`
}

// PUT /admin/settings
// Publishes the full settings form; a failed save keeps the previous
// configuration active.
func UpdateSettings(store *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SettingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updated, err := store.Update(models.Settings{
			StudioName:      input.StudioName,
			LegalHQ:         input.LegalHQ,
			Tagline:         input.Tagline,
			AIEnabled:       *input.AIEnabled,
			MaintenanceMode: *input.MaintenanceMode,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
