package admin

import (
	"time"

	"pazarmetre-backend/internal/analytics"
	"pazarmetre-backend/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GET /api/admin/stats – 30 günlük ziyaret istatistikleri
func StatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		summary, err := analytics.Load(time.Now())
		if err != nil {
			logger.Get().Error("istatistikler yüklenemedi", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "İstatistikler yüklenemedi")
		}
		return c.JSON(summary)
	}
}
