package admin

import (
	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/logger"
	"pazarmetre-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GET /api/admin/businesses – onay bekleyenler önce, sonra en yeni kayıt
func BusinessListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var businesses []models.Business
		database.DB.
			Order("is_approved ASC, created_at DESC").
			Find(&businesses)
		return c.JSON(fiber.Map{"businesses": businesses})
	}
}

func loadBusiness(c *fiber.Ctx) (*models.Business, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "İşletme bulunamadı")
	}
	var biz models.Business
	if err := database.DB.First(&biz, id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "İşletme bulunamadı")
	}
	return &biz, nil
}

// POST /api/admin/businesses/:id/approve
func BusinessApproveHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		biz, err := loadBusiness(c)
		if err != nil {
			return err
		}

		biz.IsApproved = true
		if err := database.DB.Save(biz).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşletme onaylanamadı")
		}

		logger.Get().Info("işletme onaylandı",
			zap.Uint("business_id", biz.ID),
			zap.String("email", biz.Email))
		return c.Redirect("/api/admin/businesses?success=approved", fiber.StatusFound)
	}
}

// POST /api/admin/businesses/:id/toggle – aktif/pasif durumunu çevirir;
// pasif işletme giriş yapamaz ama kayıtları silinmez.
func BusinessToggleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		biz, err := loadBusiness(c)
		if err != nil {
			return err
		}

		biz.IsActive = !biz.IsActive
		if err := database.DB.Save(biz).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşletme güncellenemedi")
		}
		return c.JSON(fiber.Map{"id": biz.ID, "is_active": biz.IsActive})
	}
}

// DELETE /api/admin/businesses/:id – işletmeyle birlikte girdiği fiyatlar da
// gider; kanonik mağaza kayıtları korunur.
func BusinessDeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		biz, err := loadBusiness(c)
		if err != nil {
			return err
		}

		database.DB.Where("business_id = ?", biz.ID).Delete(&models.Offer{})
		database.DB.Where("business_id = ?", biz.ID).Delete(&models.Store{})
		if err := database.DB.Delete(biz).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşletme silinemedi")
		}

		logger.Get().Info("işletme silindi", zap.Uint("business_id", biz.ID))
		return c.JSON(fiber.Map{"deleted": biz.ID})
	}
}
