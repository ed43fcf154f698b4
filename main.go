package main

import (
	"log"

	"github.com/azzami13/Mapasset/config"
	"github.com/azzami13/Mapasset/middlewares"
	"github.com/azzami13/Mapasset/models"
	"github.com/azzami13/Mapasset/routes"
	"github.com/azzami13/Mapasset/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan, lanjut pakai env proses")
	}

	if err := config.LoadConfig(); err != nil {
		log.Fatalf("❌ Konfigurasi tidak valid: %v", err)
	}

	config.ConnectDB()

	// Auto-migrate data referensi + katalog
	if err := config.DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.Asset{},
	); err != nil {
		log.Fatalf("❌ Gagal migrate: %v", err)
	}

	config.SeedRolesAndAdmin()

	utils.SecretKey = config.JWTSecret

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.SetupRoutes(r, config.DB)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "🗺️ Aset API is running"})
	})

	log.Printf("Aset API listen di :%s", config.Port)
	_ = r.Run(":" + config.Port)
}
