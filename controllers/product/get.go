package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/catalog"
	"github.com/nicoxroll/digrazia-bros/models"
)

// GetProducts lists the catalog, optionally narrowed by category and a
// name search. Query params: ?category=Living+Room&q=sofa
func GetProducts(source catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{
			Category: c.Query("category"),
			Query:    c.Query("q"),
		}
		if filter.Category != "" && !models.ValidCategory(filter.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}

		products, err := source.List(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetProductByID returns a single product.
// URL param: /products/:id
func GetProductByID(source catalog.Source) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		product, err := source.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
