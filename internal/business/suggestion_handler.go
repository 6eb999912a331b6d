package business

import (
	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type suggestionRequest struct {
	ProductName string `json:"product_name" form:"product_name"`
	Category    string `json:"category" form:"category"`
	Unit        string `json:"unit" form:"unit"`
	Description string `json:"description" form:"description"`
}

// POST /api/business/suggestions – admin incelemesine düşen ürün önerisi
func SuggestHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		biz := fromCtx(c)

		var body suggestionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.ProductName == "" || body.Category == "" || body.Unit == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün adı, kategori ve birim zorunlu")
		}

		sug := models.ProductSuggestion{
			BusinessID:  biz.ID,
			ProductName: body.ProductName,
			Category:    optional(body.Category),
			Unit:        optional(body.Unit),
			Description: optional(body.Description),
			Status:      models.SuggestionPending,
		}
		if err := database.DB.Create(&sug).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Öneri kaydedilemedi")
		}

		return c.Redirect("/business/suggestions/new?success=suggested", fiber.StatusFound)
	}
}
