// Package admin, yönetim uçlarını içerir: genel bakış, fiyat uyarıları,
// toplu fiyat girişi, ürün/işletme/öneri yönetimi, istatistik, tohum veriler
// ve xlsx dışa aktarım. Yetkilendirme basit cookie karşılaştırmasıdır.
package admin

import (
	"time"

	"pazarmetre-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

const adminCookie = "adm"

func isAdmin(c *fiber.Ctx, cfg *config.Config) bool {
	return cfg.AdminPassword != "" && c.Cookies(adminCookie) == cfg.AdminPassword
}

// Middleware: admin değilse login'e yönlendirir, hata döndürmez.
func Middleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !isAdmin(c, cfg) {
			return c.Redirect("/admin/login", fiber.StatusFound)
		}
		return c.Next()
	}
}

type loginRequest struct {
	Password string `json:"password" form:"password"`
}

// POST /api/admin/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body loginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Password != cfg.AdminPassword {
			return c.Redirect("/admin/login?error=wrong_password", fiber.StatusFound)
		}

		c.Cookie(&fiber.Cookie{
			Name:     adminCookie,
			Value:    cfg.AdminPassword,
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
			Expires:  time.Now().Add(30 * 24 * time.Hour),
		})
		return c.Redirect("/api/admin", fiber.StatusFound)
	}
}

// GET /api/admin/logout
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.ClearCookie(adminCookie)
		return c.Redirect("/", fiber.StatusFound)
	}
}
