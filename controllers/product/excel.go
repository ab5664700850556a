package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nicoxroll/digrazia-bros/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportProductsToExcel streams the inventory as an .xlsx download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Inventory")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "Category",
			"Rating", "Stock", "Image", "Gallery", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(string(p.Category))
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(strings.Join(p.Images, ";"))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=inventory.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}

// ImportProductsFromExcel upserts catalog rows from an .xlsx upload in
// the export layout. Rows with an unknown or empty ID create products.
func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			name := get(1)
			description := get(2)
			price, priceErr := strconv.ParseFloat(get(3), 64)
			category := get(4)
			rating, _ := strconv.ParseFloat(get(5), 64)
			stock, _ := strconv.Atoi(get(6))
			image := get(7)
			gallery := get(8)

			if name == "" || priceErr != nil || !models.ValidCategory(category) {
				skippedCount++
				continue
			}

			var images []string
			for _, url := range strings.Split(gallery, ";") {
				if url = strings.TrimSpace(url); url != "" {
					images = append(images, url)
				}
			}

			product := models.Product{
				ID:          id,
				Name:        name,
				Description: description,
				Price:       price,
				Category:    models.Category(category),
				Image:       image,
				Images:      images,
				Rating:      rating,
				Stock:       stock,
			}

			if id == "" {
				product.ID = uuid.NewString()
				if err := db.Create(&product).Error; err != nil {
					skippedCount++
					continue
				}
				createdCount++
				continue
			}

			var existing models.Product
			err := db.First(&existing, "id = ?", id).Error
			switch {
			case err == gorm.ErrRecordNotFound:
				if err := db.Create(&product).Error; err != nil {
					skippedCount++
					continue
				}
				createdCount++
			case err != nil:
				skippedCount++
			default:
				if err := db.Model(&existing).Updates(&product).Error; err != nil {
					skippedCount++
					continue
				}
				updatedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
