package config

import (
	"log"

	"github.com/azzami13/Mapasset/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedRolesAndAdmin memastikan tiga role referensi ada dan minimal satu
// user ADMIN aktif tersedia. Idempoten, dijalankan setiap startup.
func SeedRolesAndAdmin() {
	for _, name := range []string{models.RoleAdmin, models.RoleEditor, models.RoleViewer} {
		var cnt int64
		DB.Model(&models.Role{}).Where("name = ?", name).Count(&cnt)
		if cnt == 0 {
			DB.Create(&models.Role{Name: name})
		}
	}

	var adminRole models.Role
	if err := DB.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		log.Printf("⚠️  Role ADMIN tidak ditemukan saat seeding: %v", err)
		return
	}

	var cnt int64
	DB.Model(&models.User{}).Where("username = ?", "admin").Count(&cnt)
	if cnt == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("⚠️  Gagal hash password admin: %v", err)
			return
		}
		DB.Create(&models.User{
			Username:     "admin",
			PasswordHash: string(hash),
			RoleID:       adminRole.ID,
			IsActive:     true,
		})
		log.Println("✅ User admin awal dibuat")
	}
}
