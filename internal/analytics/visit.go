// Package analytics basit ziyaret kaydı tutar: GET isteği başına, oturum
// cookie'si yoksa tek satır. IP ve oturum kimliği yalnızca tuzlu SHA-256
// hash olarak saklanır.
package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/logger"
	"pazarmetre-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const SessionCookie = "pz_sess"

// HashWithSalt: sha256(value + salt), hex. Aynı tuzla deterministiktir;
// tuz değişirse eski hashlerle eşleşmez.
func HashWithSalt(value, salt string) string {
	sum := sha256.Sum256([]byte(value + salt))
	return hex.EncodeToString(sum[:])
}

// Reverse proxy arkasında gerçek IP X-Forwarded-For'un ilk girdisidir
func clientIP(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "0.0.0.0"
}

func skipPath(path string) bool {
	return strings.HasPrefix(path, "/static") ||
		strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/metrics") ||
		path == "/favicon.ico" || path == "/robots.txt" || path == "/sitemap.xml"
}

// Middleware her yeni ziyaretçi oturumu için bir Visit satırı yazar ve
// pz_sess cookie'sini diker. Kayıt hatası isteği asla etkilemez.
func Middleware(salt string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		if path == "" {
			path = "/"
		}
		existing := c.Cookies(SessionCookie)

		err := c.Next()

		if c.Method() != fiber.MethodGet || skipPath(path) || existing != "" {
			return err
		}

		sess := uuid.New().String()
		c.Cookie(&fiber.Cookie{
			Name:     SessionCookie,
			Value:    sess,
			SameSite: "Lax",
			Path:     "/",
			HTTPOnly: true,
		})

		ua := c.Get("User-Agent")
		if len(ua) > 255 {
			ua = ua[:255]
		}
		visitorHash := HashWithSalt(sess, salt)
		visit := models.Visit{
			Path:        path,
			IPHash:      HashWithSalt(clientIP(c), salt),
			VisitorHash: &visitorHash,
			TS:          time.Now().UTC(),
		}
		if ua != "" {
			visit.UA = &ua
		}

		if dbErr := database.DB.Create(&visit).Error; dbErr != nil {
			logger.Get().Warn("ziyaret kaydı yazılamadı", zap.Error(dbErr), zap.String("path", path))
		}

		return err
	}
}
