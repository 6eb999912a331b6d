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

// Vitrin marka kartlarında listelenen zincirler
var brandNames = []string{"Migros", "A101", "BİM"}

// canonicalBrand, URL parametresini (migros, a101, bim vb.) bilinen marka
// adına çevirir. Eşleme Türkçe harf duyarsızdır; BİM/bim aynı markadır.
func canonicalBrand(param string) (string, bool) {
	key := turkish.Fold(param)
	for _, b := range brandNames {
		if turkish.Fold(b) == key {
			return b, true
		}
	}
	return "", false
}

// brandRows, markanın ilçedeki mağaza kayıtlarına bağlı onaylı teklifleri toplar.
func brandRows(city, district, brand string) []pricing.Row {
	var stores []models.Store
	database.DB.
		Where("city = ? AND district = ?", city, district).
		Find(&stores)

	storeByID := make(map[uint]models.Store)
	var storeIDs []uint
	for _, st := range stores {
		if !turkish.Equal(st.Name, brand) {
			continue
		}
		storeByID[st.ID] = st
		storeIDs = append(storeIDs, st.ID)
	}
	if len(storeIDs) == 0 {
		return nil
	}

	var offers []models.Offer
	database.DB.
		Where("approved = ? AND store_id IN ?", true, storeIDs).
		Find(&offers)

	rows := make([]pricing.Row, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, pricing.Row{Offer: o, Store: storeByID[o.StoreID]})
	}
	return rows
}

// bestOffer, markanın güncel tekliflerinden en ucuzunu döndürür (ürün adı dahil).
func bestOffer(cfg *config.Config, city, district, brand string, now time.Time) fiber.Map {
	agg := pricing.Aggregate(brandRows(city, district, brand), pricing.Options{
		Now:       now,
		StaleDays: cfg.DaysHardDrop,
		PerBrand:  false,
	})
	if len(agg) == 0 {
		return nil
	}

	best := agg[0]
	var product models.Product
	database.DB.First(&product, best.Offer.ProductID)

	return fiber.Map{
		"product_name": product.Name,
		"unit":         product.Unit,
		"price":        best.Offer.Price,
		"currency":     best.Offer.Currency,
		"date":         pricing.DisplayDate(best.Offer).Format(dateLayout),
	}
}

// GET /api/magazalar – bilinen zincirlerin ilçedeki en ucuz güncel teklifi
func BrandsHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		city, district, _ := location.Get(c)
		if city == "" || district == "" {
			return c.Redirect("/lokasyon", fiber.StatusFound)
		}

		now := time.Now()
		out := make([]fiber.Map, 0, len(brandNames))
		for _, brand := range brandNames {
			entry := fiber.Map{
				"brand": brand,
				"slug":  turkish.Fold(brand),
			}
			if best := bestOffer(cfg, city, district, brand, now); best != nil {
				entry["best"] = best
			}
			out = append(out, entry)
		}

		return c.JSON(fiber.Map{
			"city":     city,
			"district": district,
			"brands":   out,
		})
	}
}

// GET /api/magaza/:brand – marka sayfası: en ucuz güncel teklif + şube listesi
func BrandPageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		brand, ok := canonicalBrand(c.Params("brand"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Mağaza bulunamadı")
		}

		city, district, _ := location.Get(c)
		if city == "" || district == "" {
			return c.Redirect("/lokasyon", fiber.StatusFound)
		}

		// Şubeler fiyat bağlamaz; liste ve harita için ayrı tutulur.
		var all []models.Branch
		database.DB.
			Where("city = ? AND district = ?", city, district).
			Order("name").
			Find(&all)
		branches := make([]models.Branch, 0, len(all))
		for _, b := range all {
			if turkish.Equal(b.Brand, brand) {
				branches = append(branches, b)
			}
		}

		resp := fiber.Map{
			"brand":    brand,
			"city":     city,
			"district": district,
			"branches": branches,
		}
		if best := bestOffer(cfg, city, district, brand, time.Now()); best != nil {
			resp["best"] = best
		}
		return c.JSON(resp)
	}
}
