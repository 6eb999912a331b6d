package admin

import (
	"fmt"
	"time"

	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/logger"
	"pazarmetre-backend/internal/models"
	"pazarmetre-backend/internal/pricing"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type exportRow struct {
	OfferID     uint       `gorm:"column:offer_id"`
	ProductName string     `gorm:"column:product_name"`
	Unit        string     `gorm:"column:unit"`
	StoreName   string     `gorm:"column:store_name"`
	City        string     `gorm:"column:city"`
	District    string     `gorm:"column:district"`
	Price       float64    `gorm:"column:price"`
	Currency    string     `gorm:"column:currency"`
	SourceURL   *string    `gorm:"column:source_url"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at"`
}

// GET /api/admin/export/prices – tüm onaylı tekliflerin xlsx dökümü
func ExportPricesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []exportRow
		database.DB.Model(&models.Offer{}).
			Select(`offers.id AS offer_id, products.name AS product_name, products.unit,
				stores.name AS store_name, stores.city, stores.district,
				offers.price, offers.currency, offers.source_url,
				offers.created_at, offers.updated_at`).
			Joins("JOIN products ON products.id = offers.product_id").
			Joins("JOIN stores ON stores.id = offers.store_id").
			Where("offers.approved = ?", true).
			Order("products.name, stores.district, offers.created_at DESC").
			Scan(&rows)

		f := excelize.NewFile()
		defer f.Close()

		const sheet = "Fiyatlar"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"ID", "Ürün", "Birim", "Mağaza", "İl", "İlçe", "Fiyat", "Para Birimi", "Kaynak URL", "Tarih"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for i, r := range rows {
			o := models.Offer{CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
			values := []interface{}{
				r.OfferID, r.ProductName, r.Unit, r.StoreName, r.City, r.District,
				r.Price, r.Currency, "", pricing.DisplayDate(o).Format("02.01.2006 15:04"),
			}
			if r.SourceURL != nil {
				values[8] = *r.SourceURL
			}
			for j, v := range values {
				cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			logger.Get().Error("xlsx dökümü oluşturulamadı", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Dışa aktarım başarısız")
		}

		filename := fmt.Sprintf("pazarmetre-fiyatlar-%s.xlsx", time.Now().Format("2006-01-02"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
		return c.Send(buf.Bytes())
	}
}
