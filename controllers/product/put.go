package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/models"
	"gorm.io/gorm"
)

// UpdateProduct updates an existing product by ID.
// Accepts the same fields as CreateProduct; every field is optional and
// an absent field leaves the stored value alone.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil || price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if v := c.PostForm("category"); v != "" {
			if !models.ValidCategory(v) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
				return
			}
			product.Category = models.Category(v)
		}
		if v := c.PostForm("rating"); v != "" {
			rating, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating"})
				return
			}
			product.Rating = rating
		}
		if v := c.PostForm("stock"); v != "" {
			stock, err := strconv.Atoi(v)
			if err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = stock
		}

		// Optional replacement image
		if file, err := c.FormFile("image"); err == nil {
			imageURL, err := saveImage(c, file)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			product.Image = imageURL
			if len(product.Images) > 0 {
				product.Images[0] = imageURL
			} else {
				product.Images = []string{imageURL}
			}
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
