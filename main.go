package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nicoxroll/digrazia-bros/cart"
	"github.com/nicoxroll/digrazia-bros/catalog"
	adminControllers "github.com/nicoxroll/digrazia-bros/controllers/admin"
	productControllers "github.com/nicoxroll/digrazia-bros/controllers/product"
	"github.com/nicoxroll/digrazia-bros/gemini"
	"github.com/nicoxroll/digrazia-bros/models"
	"github.com/nicoxroll/digrazia-bros/routes"
	"github.com/nicoxroll/digrazia-bros/sales"
	"github.com/nicoxroll/digrazia-bros/settings"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting Digrazia Brothers storefront...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Sale{},
		&models.Settings{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the showroom and ledger on first boot
	if err := catalog.SeedDatabase(db); err != nil {
		log.Fatalf("❌ Product seeding failed: %v", err)
	}
	if err := adminControllers.SeedSales(db); err != nil {
		log.Fatalf("❌ Sales seeding failed: %v", err)
	}

	settingsStore, err := settings.NewStore(db)
	if err != nil {
		log.Fatalf("❌ Settings load failed: %v", err)
	}

	geminiClient := gemini.NewFromEnv()
	if geminiClient.Configured() {
		log.Println("🤖 Concierge AI configured")
	} else {
		log.Println("ℹ️ GEMINI_API_KEY not set — concierge serves the contact fallback")
	}

	// Gin setup
	r := gin.Default()

	// Allow large image uploads (32 MB)
	r.MaxMultipartMemory = 32 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded product imagery
	uploadsDir := productControllers.UploadsDir()
	r.Static("/uploads", uploadsDir)

	// Session-keyed carts; session tokens live 24h, so sweep anything
	// idle past that every hour.
	carts := cart.NewStore()
	go func() {
		for range time.Tick(time.Hour) {
			if n := carts.EvictIdle(24 * time.Hour); n > 0 {
				log.Printf("🧹 Evicted %d idle carts", n)
			}
		}
	}()

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Carts:    carts,
		Catalog:  catalog.NewGormSource(db),
		Sales:    sales.NewGormLedger(db),
		Gemini:   geminiClient,
		Settings: settingsStore,
	})

	// Nightly image backup at 2 AM, keep 4 days, when a backup dir is set
	if backupDir := os.Getenv("UPLOADS_BACKUP_DIR"); backupDir != "" {
		go startDailyBackupAtFixedTime(uploadsDir, backupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startDailyBackupAtFixedTime copies the uploads dir daily at a fixed
// hour and removes backups older than the retention window.
func startDailyBackupAtFixedTime(srcDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next image backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		destDir := filepath.Join(backupDir, time.Now().Format("2006-01-02_15-04-05"))
		if err := copyDir(srcDir, destDir); err != nil {
			log.Printf("❌ Failed to back up images: %v", err)
		} else {
			log.Printf("✅ Images backed up to %s", destDir)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			err = copyDir(srcPath, destPath)
		} else {
			err = copyFile(srcPath, destPath)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single file
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup folders older than retention duration
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", folderPath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
