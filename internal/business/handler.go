package business

import (
	"strings"
	"time"

	"pazarmetre-backend/internal/config"
	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	BusinessName    string `json:"business_name" form:"business_name"`
	ContactPerson   string `json:"contact_person" form:"contact_person"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	Address         string `json:"address" form:"address"`
	City            string `json:"city" form:"city"`
	District        string `json:"district" form:"district"`
	Password        string `json:"password" form:"password"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// POST /api/business/register – kayıt alınır, admin onayına düşer.
// Doğrulama hataları orijinaldeki ?error= kodlarıyla yönlendirilir.
func RegisterHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body registerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.BusinessName == "" || body.ContactPerson == "" || body.Email == "" ||
			body.Phone == "" || body.City == "" || body.District == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Zorunlu alanlar eksik")
		}
		if body.Password != body.PasswordConfirm {
			return c.Redirect("/business/register?error=password_mismatch", fiber.StatusFound)
		}
		if len(body.Password) < 6 {
			return c.Redirect("/business/register?error=password_too_short", fiber.StatusFound)
		}

		var count int64
		database.DB.Model(&models.Business{}).Where("email = ?", body.Email).Count(&count)
		if count > 0 {
			return c.Redirect("/business/register?error=email_exists", fiber.StatusFound)
		}

		hash, err := HashPassword(body.Password)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Şifre hashlenemedi")
		}

		biz := models.Business{
			Email:          body.Email,
			HashedPassword: hash,
			BusinessName:   body.BusinessName,
			ContactPerson:  optional(body.ContactPerson),
			Phone:          optional(body.Phone),
			Address:        optional(body.Address),
			City:           body.City,
			District:       body.District,
			IsApproved:     false, // admin onayı gerekli
			IsActive:       true,
		}
		if err := database.DB.Create(&biz).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşletme kaydı oluşturulamadı")
		}

		return c.Redirect("/business/register?success=registered", fiber.StatusFound)
	}
}

// POST /api/business/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body loginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var biz models.Business
		if err := database.DB.Where("email = ?", body.Email).First(&biz).Error; err != nil {
			return c.Redirect("/business/login?error=invalid_credentials", fiber.StatusFound)
		}
		if !VerifyPassword(body.Password, biz.HashedPassword) {
			return c.Redirect("/business/login?error=invalid_credentials", fiber.StatusFound)
		}
		if !biz.IsApproved {
			return c.Redirect("/business/login?error=not_approved", fiber.StatusFound)
		}
		if !biz.IsActive {
			return c.Redirect("/business/login?error=inactive", fiber.StatusFound)
		}

		token, err := GenerateToken(cfg.JWTSecret, biz.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Token oluşturulamadı")
		}

		c.Cookie(&fiber.Cookie{
			Name:     TokenCookie,
			Value:    token,
			HTTPOnly: true,
			SameSite: "Lax",
			Path:     "/",
			Expires:  time.Now().Add(tokenTTL),
		})

		return c.Redirect("/business/dashboard", fiber.StatusFound)
	}
}

// GET /api/business/logout
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.ClearCookie(TokenCookie)
		return c.Redirect("/", fiber.StatusFound)
	}
}

// GET /api/business/dashboard – özet + son 10 fiyat
func DashboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		biz := fromCtx(c)

		var offerCount int64
		database.DB.Model(&models.Offer{}).Where("business_id = ?", biz.ID).Count(&offerCount)

		type recentOffer struct {
			ID          uint      `json:"id"`
			ProductName string    `json:"product_name"`
			StoreName   string    `json:"store_name"`
			Price       float64   `json:"price"`
			Currency    string    `json:"currency"`
			CreatedAt   time.Time `json:"created_at"`
		}
		var recent []recentOffer
		database.DB.Model(&models.Offer{}).
			Select("offers.id, products.name AS product_name, stores.name AS store_name, offers.price, offers.currency, offers.created_at").
			Joins("JOIN products ON products.id = offers.product_id").
			Joins("JOIN stores ON stores.id = offers.store_id").
			Where("offers.business_id = ?", biz.ID).
			Order("offers.created_at DESC").
			Limit(10).
			Scan(&recent)

		return c.JSON(fiber.Map{
			"business": fiber.Map{
				"id":            biz.ID,
				"business_name": biz.BusinessName,
				"email":         biz.Email,
				"district":      biz.District,
				"is_active":     biz.IsActive,
			},
			"offer_count":   offerCount,
			"recent_offers": recent,
		})
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
