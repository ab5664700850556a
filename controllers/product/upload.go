package productcontroller

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadsDir is where product imagery lands; main serves it under /uploads.
func UploadsDir() string {
	if dir := os.Getenv("UPLOADS_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// saveImage stores an uploaded file under a uuid name and returns its
// public URL.
func saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".webp"
	}
	filename := uuid.NewString() + ext

	saveDir := filepath.Join(UploadsDir(), "products")
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}
	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	return fmt.Sprintf("/uploads/products/%s", filename), nil
}

// UploadImage stores a single image and answers its stable URL.
// POST /admin/uploads, field "image"
func UploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}

		url, err := saveImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}
