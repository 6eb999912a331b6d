package business

import (
	"sort"

	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type priceRequest struct {
	ProductID uint    `json:"product_id" form:"product_id"`
	StoreID   uint    `json:"store_id" form:"store_id"`
	Price     float64 `json:"price" form:"price"`
}

// GET /api/business/prices/new – fiyat girişi için seçenekler: aktif ürünler
// kategori bazında, işletmenin ilçesindeki mağazalar. İşletmenin kendi mağaza
// kaydı yoksa ilk kullanımda oluşturulur.
func PriceFormHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		biz := fromCtx(c)

		var products []models.Product
		database.DB.
			Where("is_active = ?", true).
			Order("category, name").
			Find(&products)

		var stores []models.Store
		database.DB.
			Where("district = ? OR business_id = ?", biz.District, biz.ID).
			Order("name").
			Find(&stores)

		ownStore := findOwnStore(stores, biz.ID)
		if ownStore == nil {
			st := models.Store{
				Name:       biz.BusinessName,
				City:       biz.City,
				District:   biz.District,
				Address:    biz.Address,
				BusinessID: &biz.ID,
			}
			if err := database.DB.Create(&st).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "İşletme mağazası oluşturulamadı")
			}
			stores = append(stores, st)
			ownStore = &stores[len(stores)-1]
		}

		// Kategori bazlı gruplama
		byCategory := make(map[string][]models.Product)
		for _, p := range products {
			cat := "Diğer"
			if p.Category != nil && *p.Category != "" {
				cat = *p.Category
			}
			byCategory[cat] = append(byCategory[cat], p)
		}
		categories := make([]string, 0, len(byCategory))
		for cat := range byCategory {
			categories = append(categories, cat)
		}
		sort.Strings(categories)

		groups := make([]fiber.Map, 0, len(categories))
		for _, cat := range categories {
			groups = append(groups, fiber.Map{
				"category": cat,
				"products": byCategory[cat],
			})
		}

		return c.JSON(fiber.Map{
			"product_groups": groups,
			"stores":         stores,
			"own_store_id":   ownStore.ID,
		})
	}
}

// POST /api/business/prices – işletme fiyatları otomatik onaylıdır
func PriceAddHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		biz := fromCtx(c)

		var body priceRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		var product models.Product
		if err := database.DB.First(&product, body.ProductID).Error; err != nil || !product.IsActive {
			return c.Redirect("/business/prices/new?error=invalid_product", fiber.StatusFound)
		}

		var store models.Store
		if err := database.DB.First(&store, body.StoreID).Error; err != nil {
			return c.Redirect("/business/prices/new?error=invalid_store", fiber.StatusFound)
		}

		offer := models.Offer{
			ProductID:  body.ProductID,
			StoreID:    body.StoreID,
			Price:      body.Price,
			Currency:   "TRY",
			Quantity:   1,
			Approved:   true,
			BusinessID: &biz.ID,
		}
		if err := database.DB.Create(&offer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Fiyat kaydedilemedi")
		}

		return c.Redirect("/business/prices/new?success=added", fiber.StatusFound)
	}
}

// GET /api/business/prices/delete/:id – işletme yalnızca kendi fiyatını siler
func PriceDeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		biz := fromCtx(c)

		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return c.Redirect("/business/dashboard?error=not_found", fiber.StatusFound)
		}

		var offer models.Offer
		if err := database.DB.First(&offer, id).Error; err != nil {
			return c.Redirect("/business/dashboard?error=not_found", fiber.StatusFound)
		}
		if offer.BusinessID == nil || *offer.BusinessID != biz.ID {
			return c.Redirect("/business/dashboard?error=unauthorized", fiber.StatusFound)
		}

		database.DB.Delete(&offer)
		return c.Redirect("/business/dashboard?success=deleted", fiber.StatusFound)
	}
}

func findOwnStore(stores []models.Store, businessID uint) *models.Store {
	for i := range stores {
		if stores[i].BusinessID != nil && *stores[i].BusinessID == businessID {
			return &stores[i]
		}
	}
	return nil
}
