package adminControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/models"
	"gorm.io/gorm"
)

type monthlyRevenue struct {
	Month   string  `json:"month"` // e.g. "Mar"
	Revenue float64 `json:"revenue"`
}

type categorySlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// monthlyBuckets sums revenue per month over the six months ending at
// now, oldest first. Months are anchored to their first day; AddDate
// on a month-end date would normalize into the following month and
// skip short months entirely.
func monthlyBuckets(now time.Time, sales []models.Sale) []monthlyRevenue {
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	months := make([]monthlyRevenue, 6)
	index := make(map[string]int, 6)
	for i := 0; i < 6; i++ {
		m := base.AddDate(0, i-5, 0)
		months[i] = monthlyRevenue{Month: m.Format("Jan")}
		index[m.Format("2006-01")] = i
	}
	for _, s := range sales {
		if i, ok := index[s.Date.Format("2006-01")]; ok {
			months[i].Revenue += s.Price
		}
	}
	return months
}

// GetDashboard computes the studio overview: totals, six months of
// revenue, and the collection mix by category.
func GetDashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sales []models.Sale
		if err := db.Find(&sales).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var totalRevenue float64
		fulfilled := 0
		for _, s := range sales {
			totalRevenue += s.Price
			if s.Status == models.SaleStatusFulfilled {
				fulfilled++
			}
		}

		// Revenue per month over the trailing six months, oldest first.
		months := monthlyBuckets(time.Now(), sales)

		// Collection mix by category.
		counts := make(map[models.Category]int)
		inStock := 0
		for _, p := range products {
			counts[p.Category]++
			if p.Stock > 0 {
				inStock++
			}
		}
		var mix []categorySlice
		for _, cat := range []models.Category{
			models.CategoryLivingRoom, models.CategoryBedroom, models.CategoryDiningRoom,
			models.CategoryOffice, models.CategoryDecor,
		} {
			if counts[cat] > 0 {
				mix = append(mix, categorySlice{Name: string(cat), Value: counts[cat]})
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"total_revenue":   totalRevenue,
			"total_sales":     len(sales),
			"fulfilled_sales": fulfilled,
			"product_count":   len(products),
			"in_stock":        inStock,
			"monthly_revenue": months,
			"category_mix":    mix,
		})
	}
}
