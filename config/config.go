package config

import (
	"errors"
	"log"
	"os"
	"time"
)

var (
	Port              string
	AppEnv            string
	JWTSecret         []byte
	JWTExpiration     time.Duration
	SeedAdminPassword string
)

// LoadConfig membaca konfigurasi dari env. JWT_SECRET wajib ada di luar
// profil development; tidak ada fallback secret tertanam.
func LoadConfig() error {
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "" {
		AppEnv = "development"
	}

	JWTSecret = []byte(os.Getenv("JWT_SECRET"))
	if len(JWTSecret) == 0 {
		if AppEnv != "development" {
			return errors.New("JWT_SECRET wajib di-set di luar profil development")
		}
		JWTSecret = []byte("dev-only-secret")
		log.Println("⚠️  JWT_SECRET tidak di-set, memakai secret development")
	}

	JWTExpiration = 24 * time.Hour
	if expireStr := os.Getenv("JWT_EXPIRE"); expireStr != "" {
		dur, err := time.ParseDuration(expireStr)
		if err != nil {
			log.Printf("JWT_EXPIRE %q tidak valid, memakai 24h", expireStr)
		} else {
			JWTExpiration = dur
		}
	}

	SeedAdminPassword = os.Getenv("SEED_ADMIN_PASSWORD")
	if SeedAdminPassword == "" {
		SeedAdminPassword = "admin123"
	}

	return nil
}
