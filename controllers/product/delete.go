package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/models"
	"gorm.io/gorm"
)

// DeleteProduct soft-deletes a catalog piece. Open carts keep their
// snapshot of it; only the catalog stops listing it.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		result := db.Delete(&models.Product{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
