package catalog

import (
	"time"

	"pazarmetre-backend/internal/config"
	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/location"
	"pazarmetre-backend/internal/models"
	"pazarmetre-backend/internal/pricing"
	"pazarmetre-backend/internal/turkish"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "02.01.2006"

var categoryTabs = []fiber.Map{
	{"key": "hepsi", "label": "Hepsi"},
	{"key": "et", "label": "Et"},
	{"key": "tavuk", "label": "Tavuk"},
	{"key": "diger", "label": "Diğer"},
}

// GET /api/vitrin?cat= – öne çıkan ürünlerin ilçedeki en ucuz tekliflerini
// listeler. Lokasyon seçilmemişse seçim sayfasına yönlendirilir. Aynı isimli
// ürün kayıtları (Türkçe harf duyarsız) tek kartta birleşir; hiç güncel
// teklifi olmayan ürün vitrine çıkmaz.
func StorefrontHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		city, district, nb := location.Get(c)
		if city == "" || district == "" {
			return c.Redirect("/lokasyon", fiber.StatusFound)
		}

		cat := c.Query("cat", "hepsi")

		q := database.DB.
			Where("featured = ? AND is_active = ?", true, true).
			Order("name")
		if cat != "hepsi" {
			q = q.Where("category = ?", cat)
		}
		var products []models.Product
		q.Find(&products)

		// Aynı ismin farklı yazımları tek grupta toplanır; görünen ad ilk
		// kayıttan alınır.
		type group struct {
			product models.Product
			ids     []uint
		}
		groups := make(map[string]*group, len(products))
		order := make([]string, 0, len(products))
		idToKey := make(map[uint]string, len(products))
		allIDs := make([]uint, 0, len(products))
		for _, p := range products {
			key := turkish.Fold(p.Name)
			g, ok := groups[key]
			if !ok {
				g = &group{product: p}
				groups[key] = g
				order = append(order, key)
			}
			g.ids = append(g.ids, p.ID)
			idToKey[p.ID] = key
			allIDs = append(allIDs, p.ID)
		}

		rows := loadRows(city, district, allIDs)
		rowsByKey := make(map[string][]pricing.Row, len(groups))
		for _, r := range rows {
			key, ok := idToKey[r.Offer.ProductID]
			if !ok {
				continue
			}
			rowsByKey[key] = append(rowsByKey[key], r)
		}

		now := time.Now()
		cards := make([]fiber.Map, 0, len(order))
		for _, key := range order {
			agg := pricing.Aggregate(rowsByKey[key], pricing.Options{
				Neighborhood:    nb,
				Now:             now,
				StaleDays:       cfg.DaysStale,
				PerBrand:        true,
				DropNonPositive: true,
			})
			if len(agg) == 0 {
				continue
			}

			best := agg[0]
			p := groups[key].product
			cards = append(cards, fiber.Map{
				"product_id":     p.ID,
				"name":           p.Name,
				"unit":           p.Unit,
				"category":       p.Category,
				"store_name":     best.Store.Name,
				"location_label": locationLabel(best.Store),
				"price":          best.Offer.Price,
				"currency":       best.Offer.Currency,
				"date":           pricing.DisplayDate(best.Offer).Format(dateLayout),
				"is_new":         pricing.IsNew(best.Offer, now),
			})
		}

		return c.JSON(fiber.Map{
			"city":         city,
			"district":     district,
			"neighborhood": nb,
			"category":     cat,
			"tabs":         categoryTabs,
			"cards":        cards,
		})
	}
}
