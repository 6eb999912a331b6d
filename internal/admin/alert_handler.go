package admin

import (
	"time"

	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type alertRow struct {
	OfferID         uint       `json:"offer_id"`
	ProductName     string     `json:"product_name"`
	StoreName       string     `json:"store_name"`
	District        string     `json:"district"`
	Price           float64    `json:"price"`
	SourcePrice     *float64   `json:"source_price"`
	SourceURL       *string    `json:"source_url"`
	SourceCheckedAt *time.Time `json:"source_checked_at"`
}

// GET /api/admin/alerts – kayıtlı fiyatı kaynak sayfadaki fiyattan sapan
// teklifler. Alanları dış fiyat izleyici doldurur; burada yalnız okunur.
func AlertsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []alertRow
		database.DB.Model(&models.Offer{}).
			Select(`offers.id AS offer_id, products.name AS product_name,
				stores.name AS store_name, stores.district,
				offers.price, offers.source_price, offers.source_url, offers.source_checked_at`).
			Joins("JOIN products ON products.id = offers.product_id").
			Joins("JOIN stores ON stores.id = offers.store_id").
			Where("offers.source_mismatch = ?", true).
			Order("offers.source_checked_at DESC NULLS LAST").
			Scan(&rows)

		return c.JSON(fiber.Map{"alerts": rows})
	}
}

// POST /api/admin/alerts/:id/clear – uyarı admin tarafından ele alındı,
// izleyici bir sonraki kontrolde yeniden işaretleyebilir.
func AlertClearHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusNotFound, "Teklif bulunamadı")
		}

		res := database.DB.Model(&models.Offer{}).
			Where("id = ?", id).
			Update("source_mismatch", false)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Uyarı temizlenemedi")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Teklif bulunamadı")
		}

		return c.Redirect("/api/admin/alerts", fiber.StatusFound)
	}
}
