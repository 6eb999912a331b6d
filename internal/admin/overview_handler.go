package admin

import (
	"time"

	"pazarmetre-backend/internal/analytics"
	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/admin – ziyaret sayaçları, kayıt sayıları ve bekleyen işler
func OverviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		yesterdayStart := todayStart.AddDate(0, 0, -1)

		var productCount, storeCount, offerCount int64
		database.DB.Model(&models.Product{}).Count(&productCount)
		database.DB.Model(&models.Store{}).Count(&storeCount)
		database.DB.Model(&models.Offer{}).Count(&offerCount)

		var mismatchCount int64
		database.DB.Model(&models.Offer{}).
			Where("source_mismatch = ?", true).
			Count(&mismatchCount)

		var pendingBusinesses, pendingSuggestions int64
		database.DB.Model(&models.Business{}).
			Where("is_approved = ?", false).
			Count(&pendingBusinesses)
		database.DB.Model(&models.ProductSuggestion{}).
			Where("status = ?", models.SuggestionPending).
			Count(&pendingSuggestions)

		return c.JSON(fiber.Map{
			"visits": fiber.Map{
				"today":     analytics.CountBetween(todayStart, time.Time{}),
				"yesterday": analytics.CountBetween(yesterdayStart, todayStart),
				"total":     analytics.CountAll(),
			},
			"counts": fiber.Map{
				"products": productCount,
				"stores":   storeCount,
				"offers":   offerCount,
			},
			"alerts": fiber.Map{
				"source_mismatch": mismatchCount,
			},
			"pending": fiber.Map{
				"businesses":  pendingBusinesses,
				"suggestions": pendingSuggestions,
			},
		})
	}
}
