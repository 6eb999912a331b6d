package admin

import (
	"strconv"
	"strings"
	"time"

	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type offerUpdateRequest struct {
	Price     string `json:"price" form:"price"`
	SourceURL string `json:"source_url" form:"source_url"`
}

// PUT /api/admin/offers/:id – fiyat ve kaynak URL düzenleme. Fiyat virgül
// ondalıklı gelebilir; çözümlenemezse 400 INVALID_PRICE. Fiyat gerçekten
// değiştiyse PriceChange kaydı düşülür.
func OfferUpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, "Teklif bulunamadı")
		}

		var offer models.Offer
		if err := database.DB.First(&offer, id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Teklif bulunamadı")
		}

		var body offerUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		raw := strings.TrimSpace(body.Price)
		newPrice, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil || newPrice <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "INVALID_PRICE"})
		}

		now := time.Now()
		if newPrice != offer.Price {
			change := models.PriceChange{
				ProductID:  offer.ProductID,
				StoreID:    offer.StoreID,
				OldPrice:   offer.Price,
				NewPrice:   newPrice,
				DetectedAt: now,
				SourceURL:  offer.SourceURL,
			}
			database.DB.Create(&change)
		}

		offer.Price = newPrice
		if s := strings.TrimSpace(body.SourceURL); s != "" {
			offer.SourceURL = &s
		}
		offer.UpdatedAt = &now
		if err := database.DB.Save(&offer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Teklif güncellenemedi")
		}

		return c.JSON(offer)
	}
}

// DELETE /api/admin/offers/:id
func OfferDeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, "Teklif bulunamadı")
		}

		res := database.DB.Delete(&models.Offer{}, id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Teklif silinemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Teklif bulunamadı")
		}
		return c.JSON(fiber.Map{"deleted": id})
	}
}
