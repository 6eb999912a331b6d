package config

import (
	"log"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort      string
	DatabaseDSN   string
	JWTSecret     string
	AdminPassword string
	AnalyticsSalt string
	CORSOrigins   string

	// Fiyat tazelik pencereleri (gün)
	DaysStale    int // vitrin için eşik
	DaysHardDrop int // ürün detayı için kesin eşik
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=pazarmetre port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AdminPassword: getEnv("PAZARMETRE_ADMIN", "pazarmetre123"),
		AnalyticsSalt: getEnv("PAZAR_SALT", "pazarmetre_salt"),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		DaysStale:     getEnvInt("DAYS_STALE", 2),
		DaysHardDrop:  getEnvInt("DAYS_HARD_DROP", 7),
	}

	// Production güvenlik kontrolleri
	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET environment değişkeni tanımlanmamış! Production için zorunludur.")
	}
	if cfg.AdminPassword == "pazarmetre123" {
		log.Println("[WARN] PAZARMETRE_ADMIN varsayılan değer kullanılıyor, production için mutlaka değiştir.")
	}
	if cfg.AnalyticsSalt == "pazarmetre_salt" {
		log.Println("[WARN] PAZAR_SALT varsayılan değer kullanılıyor, ziyaretçi hashleri tahmin edilebilir olur.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("[WARN] %s geçersiz (%q), varsayılan %d kullanılıyor", key, v, def)
		return def
	}
	return n
}
