package admin

import (
	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/logger"
	"pazarmetre-backend/internal/models"
	"pazarmetre-backend/internal/turkish"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// POST /api/admin/seed/products – temel ürünleri yükler; mevcut isimler
// (Türkçe harf duyarsız) atlanır, çalıştırmak idempotenttir.
func SeedProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var existing []models.Product
		database.DB.Find(&existing)
		taken := make(map[string]bool, len(existing))
		for _, p := range existing {
			taken[turkish.Fold(p.Name)] = true
		}

		added := 0
		for _, sp := range seedProducts {
			if taken[turkish.Fold(sp.Name)] {
				continue
			}
			cat, desc := sp.Category, sp.Description
			p := models.Product{
				Name:        sp.Name,
				Unit:        sp.Unit,
				Category:    &cat,
				Description: &desc,
				IsActive:    true,
				CreatedBy:   "system",
			}
			if err := database.DB.Create(&p).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Ürün tohumlaması başarısız")
			}
			taken[turkish.Fold(p.Name)] = true
			added++
		}

		logger.Get().Info("ürün tohumlaması tamamlandı", zap.Int("added", added))
		return c.JSON(fiber.Map{"ok": true, "added": added})
	}
}

// POST /api/admin/seed/branches – ilçe başına kanonik Migros mağazası ve
// harita için şube kayıtlarını yükler; mevcutlar atlanır.
func SeedBranchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		const city = "Sakarya"
		const brand = "Migros"

		addedStore, addedBranch := 0, 0
		for district, branches := range migrosBranches {
			var stores []models.Store
			database.DB.
				Where("city = ? AND district = ? AND neighborhood IS NULL", city, district).
				Find(&stores)
			found := false
			for _, st := range stores {
				if turkish.Equal(st.Name, brand) {
					found = true
					break
				}
			}
			if !found {
				st := models.Store{Name: brand, City: city, District: district}
				if err := database.DB.Create(&st).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Mağaza tohumlaması başarısız")
				}
				addedStore++
			}

			var existing []models.Branch
			database.DB.
				Where("city = ? AND district = ?", city, district).
				Find(&existing)
			for _, sb := range branches {
				dup := false
				for _, b := range existing {
					if turkish.Equal(b.Brand, brand) && b.Name == sb.Name {
						dup = true
						break
					}
				}
				if dup {
					continue
				}
				addr, lat, lng := sb.Address, sb.Lat, sb.Lng
				b := models.Branch{
					Brand:    brand,
					City:     city,
					District: district,
					Name:     sb.Name,
					Address:  &addr,
					Lat:      &lat,
					Lng:      &lng,
				}
				if err := database.DB.Create(&b).Error; err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Şube tohumlaması başarısız")
				}
				addedBranch++
			}
		}

		logger.Get().Info("şube tohumlaması tamamlandı",
			zap.Int("added_store", addedStore),
			zap.Int("added_branch", addedBranch))
		return c.JSON(fiber.Map{"ok": true, "added_store": addedStore, "added_branch": addedBranch})
	}
}
