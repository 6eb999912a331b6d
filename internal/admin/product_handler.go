package admin

import (
	"strings"

	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"
	"pazarmetre-backend/internal/turkish"

	"github.com/gofiber/fiber/v2"
)

type productRequest struct {
	Name        string `json:"name" form:"name"`
	Unit        string `json:"unit" form:"unit"`
	Category    string `json:"category" form:"category"`
	Description string `json:"description" form:"description"`
	Featured    bool   `json:"featured" form:"featured"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
}

// İsim benzersizliği Türkçe harf duyarsız; veritabanı collation'ına
// bırakılmaz. excludeID güncellemede kaydın kendisini dışlar.
func nameTaken(name string, excludeID uint) bool {
	key := turkish.Fold(name)
	var products []models.Product
	database.DB.Find(&products)
	for _, p := range products {
		if p.ID != excludeID && turkish.Fold(p.Name) == key {
			return true
		}
	}
	return false
}

// GET /api/admin/products
func ProductListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		database.DB.Order("category, name").Find(&products)
		return c.JSON(fiber.Map{"products": products})
	}
}

// POST /api/admin/products
func ProductCreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body productRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün adı zorunlu")
		}
		if nameTaken(body.Name, 0) {
			return c.Redirect("/api/admin/products?error=duplicate_name", fiber.StatusFound)
		}

		unit := strings.ToLower(strings.TrimSpace(body.Unit))
		if !validUnits[unit] {
			unit = "kg"
		}

		p := models.Product{
			Name:      body.Name,
			Unit:      unit,
			Featured:  body.Featured,
			IsActive:  true,
			CreatedBy: "admin",
		}
		if cat := strings.ToLower(strings.TrimSpace(body.Category)); validCategories[cat] {
			p.Category = &cat
		}
		if desc := strings.TrimSpace(body.Description); desc != "" {
			p.Description = &desc
		}
		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GET /api/admin/products/:id
func ProductGetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var p models.Product
		if err := database.DB.First(&p, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var offerCount int64
		database.DB.Model(&models.Offer{}).Where("product_id = ?", p.ID).Count(&offerCount)

		return c.JSON(fiber.Map{"product": p, "offer_count": offerCount})
	}
}

// PUT /api/admin/products/:id
func ProductUpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var p models.Product
		if err := database.DB.First(&p, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body productRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if name := strings.TrimSpace(body.Name); name != "" {
			if nameTaken(name, p.ID) {
				return c.Redirect("/api/admin/products?error=duplicate_name", fiber.StatusFound)
			}
			p.Name = name
		}
		if unit := strings.ToLower(strings.TrimSpace(body.Unit)); validUnits[unit] {
			p.Unit = unit
		}
		if cat := strings.ToLower(strings.TrimSpace(body.Category)); validCategories[cat] {
			p.Category = &cat
		}
		if desc := strings.TrimSpace(body.Description); desc != "" {
			p.Description = &desc
		}
		p.Featured = body.Featured
		if body.IsActive != nil {
			p.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}
		return c.JSON(p)
	}
}

// DELETE /api/admin/products/:id – ürünle birlikte teklifleri de gider
func ProductDeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		res := database.DB.Delete(&models.Product{}, id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		database.DB.Where("product_id = ?", id).Delete(&models.Offer{})
		return c.JSON(fiber.Map{"deleted": id})
	}
}
