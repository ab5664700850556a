package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nicoxroll/digrazia-bros/models"
	"gorm.io/gorm"
)

// CreateProduct creates a new catalog piece with image upload.
// Multipart form: name, description, price, category, rating, stock,
// image (file, required), gallery (files, optional).
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		priceStr := c.PostForm("price")
		category := c.PostForm("category")
		if name == "" || priceStr == "" || category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, price, and category are required"})
			return
		}
		if !models.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		var rating float64
		if v := c.PostForm("rating"); v != "" {
			if rating, err = strconv.ParseFloat(v, 64); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating"})
				return
			}
		}
		var stock int
		if v := c.PostForm("stock"); v != "" {
			if stock, err = strconv.Atoi(v); err != nil || stock < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		// Primary image
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		imageURL, err := saveImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		// Optional gallery
		images := []string{imageURL}
		if form, err := c.MultipartForm(); err == nil {
			for _, extra := range form.File["gallery"] {
				url, err := saveImage(c, extra)
				if err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
					return
				}
				images = append(images, url)
			}
		}

		newProduct := models.Product{
			ID:          uuid.NewString(),
			Name:        name,
			Description: c.PostForm("description"),
			Price:       price,
			Category:    models.Category(category),
			Image:       imageURL,
			Images:      images,
			Rating:      rating,
			Stock:       stock,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, newProduct)
	}
}
