package adminControllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicoxroll/digrazia-bros/models"
	"github.com/nicoxroll/digrazia-bros/sales"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

const salesPageSize = 5

// mapSaleStatus maps user input to a ledger status.
func mapSaleStatus(status string) (models.SaleStatus, error) {
	switch strings.ToLower(status) {
	case strings.ToLower(string(models.SaleStatusCommissioned)):
		return models.SaleStatusCommissioned, nil
	case strings.ToLower(string(models.SaleStatusProcessing)):
		return models.SaleStatusProcessing, nil
	case strings.ToLower(string(models.SaleStatusShipped)):
		return models.SaleStatusShipped, nil
	case strings.ToLower(string(models.SaleStatusFulfilled)):
		return models.SaleStatusFulfilled, nil
	default:
		return "", errors.New("invalid sale status")
	}
}

func seedDate(s string) time.Time {
	t, _ := time.Parse("Jan 02, 2006", s)
	return t
}

// SeedSales fills an empty ledger with the studio's historical
// transactions so the back-office has something to show.
func SeedSales(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Sale{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rows := []models.Sale{
		{ID: "1001", Customer: "Isabella Rossellini", Product: "Serene Cloud Sofa", Price: 2450, Date: seedDate("Mar 12, 2024"), Status: models.SaleStatusFulfilled},
		{ID: "1002", Customer: "Luca Guadagnino", Product: "Marble Nesting Tables", Price: 560, Date: seedDate("Mar 10, 2024"), Status: models.SaleStatusProcessing},
		{ID: "1003", Customer: "Monica Bellucci", Product: "Ethereal Bed Frame", Price: 1750, Date: seedDate("Mar 08, 2024"), Status: models.SaleStatusCommissioned},
		{ID: "1004", Customer: "Ennio Morricone", Product: "Rose Quartz Lamp", Price: 240, Date: seedDate("Mar 05, 2024"), Status: models.SaleStatusShipped},
		{ID: "1005", Customer: "Sofia Loren", Product: "Nordic Dining Table", Price: 1200, Date: seedDate("Mar 02, 2024"), Status: models.SaleStatusFulfilled},
		{ID: "1006", Customer: "Alain Delon", Product: "Minimalist Oak Desk", Price: 890, Date: seedDate("Feb 28, 2024"), Status: models.SaleStatusShipped},
	}
	if err := db.Create(&rows).Error; err != nil {
		return err
	}
	log.Println("🧾 Seeded sales ledger")
	return nil
}

// GetSales lists the ledger with search, status filter, and pagination.
// Query params: ?q=&status=&page=
func GetSales(ledger sales.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}

		filter := sales.Filter{
			Query:    c.Query("q"),
			Page:     page,
			PageSize: salesPageSize,
		}
		if status := c.Query("status"); status != "" && status != "All" {
			mapped, err := mapSaleStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale status"})
				return
			}
			filter.Status = mapped
		}

		rows, total, err := ledger.List(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}
		if rows == nil {
			rows = []models.Sale{}
		}

		c.JSON(http.StatusOK, gin.H{
			"sales":       rows,
			"page":        page,
			"total":       total,
			"total_pages": int(math.Ceil(float64(total) / float64(salesPageSize))),
		})
	}
}

// UpdateSaleStatus moves a ledger entry through the commission flow.
// PUT /admin/sales/:id/status
func UpdateSaleStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		status, err := mapSaleStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale status"})
			return
		}

		var sale models.Sale
		if err := db.First(&sale, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}

		sale.Status = status
		if err := db.Save(&sale).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sale"})
			return
		}
		c.JSON(http.StatusOK, sale)
	}
}

// ExportSalesToExcel streams the ledger as an .xlsx download.
func ExportSalesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []models.Sale
		if err := db.Order("date DESC").Find(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Sales")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"ID", "Customer", "Product", "Price", "Date", "Status"} {
			headerRow.AddCell().SetValue(h)
		}
		for _, s := range rows {
			row := sheet.AddRow()
			row.AddCell().SetValue(s.ID)
			row.AddCell().SetValue(s.Customer)
			row.AddCell().SetValue(s.Product)
			row.AddCell().SetValue(s.Price)
			row.AddCell().SetValue(s.Date.Format("2006-01-02"))
			row.AddCell().SetValue(string(s.Status))
		}

		c.Header("Content-Disposition", "attachment; filename=sales.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
