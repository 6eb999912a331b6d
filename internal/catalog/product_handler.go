package catalog

import (
	"strings"
	"time"

	"pazarmetre-backend/internal/config"
	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/location"
	"pazarmetre-backend/internal/models"
	"pazarmetre-backend/internal/pricing"
	"pazarmetre-backend/internal/turkish"

	"github.com/gofiber/fiber/v2"
)

// GET /api/urun?name= – tek ürünün ilçedeki mağaza karşılaştırması. İsim
// eşlemesi Türkçe harf duyarsızdır ve aynı isimli tüm ürün kayıtlarını
// kapsar. "Hiç teklif yok" ile "teklifler var ama hepsi bayat" ayrı
// durumlar olarak bildirilir.
func ProductDetailHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := strings.TrimSpace(c.Query("name"))
		if name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Ürün adı gerekli")
		}

		city, district, nb := location.Get(c)
		if city == "" || district == "" {
			return c.Redirect("/lokasyon", fiber.StatusFound)
		}

		var products []models.Product
		database.DB.Where("is_active = ?", true).Find(&products)

		key := turkish.Fold(name)
		var matched *models.Product
		var ids []uint
		for i := range products {
			if turkish.Fold(products[i].Name) == key {
				if matched == nil {
					matched = &products[i]
				}
				ids = append(ids, products[i].ID)
			}
		}
		if matched == nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		now := time.Now()
		all := loadRows(city, district, ids)
		agg := pricing.Aggregate(all, pricing.Options{
			Neighborhood: nb,
			Now:          now,
			StaleDays:    cfg.DaysHardDrop,
			PerBrand:     true,
		})

		resp := fiber.Map{
			"product": fiber.Map{
				"id":          matched.ID,
				"name":        matched.Name,
				"unit":        matched.Unit,
				"category":    matched.Category,
				"description": matched.Description,
			},
			"city":         city,
			"district":     district,
			"neighborhood": nb,
		}

		if len(agg) == 0 {
			resp["rows"] = []fiber.Map{}
			if len(all) == 0 {
				resp["state"] = "no_offer"
				resp["message"] = "Bu lokasyonda teklif yok."
			} else {
				resp["state"] = "no_current_price"
				resp["message"] = "Bu ürün için geçerli fiyat bulunamadı."
			}
			return c.JSON(resp)
		}

		best, _ := pricing.BestPrice(agg)
		out := make([]fiber.Map, 0, len(agg))
		for _, r := range agg {
			address := r.Store.Address
			if r.Offer.BranchAddress != nil && *r.Offer.BranchAddress != "" {
				address = r.Offer.BranchAddress
			}
			out = append(out, fiber.Map{
				"store_name":     r.Store.Name,
				"location_label": locationLabel(r.Store),
				"address":        address,
				"price":          r.Offer.Price,
				"currency":       r.Offer.Currency,
				"quantity":       r.Offer.Quantity,
				"source_url":     r.Offer.SourceURL,
				"date":           pricing.DisplayDate(r.Offer).Format(dateLayout),
				"is_cheapest":    pricing.IsCheapest(r, best),
				"is_new":         pricing.IsNew(r.Offer, now),
			})
		}

		resp["state"] = "ok"
		resp["best_price"] = best
		resp["rows"] = out
		return c.JSON(resp)
	}
}
