package admin

import (
	"fmt"
	"strings"
	"time"

	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/admin/suggestions – bekleyen öneriler, en yeni önce
func SuggestionListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		type suggestionRow struct {
			models.ProductSuggestion
			BusinessName string `json:"business_name"`
		}
		var rows []suggestionRow
		database.DB.Model(&models.ProductSuggestion{}).
			Select("product_suggestions.*, businesses.business_name").
			Joins("JOIN businesses ON businesses.id = product_suggestions.business_id").
			Where("product_suggestions.status = ?", models.SuggestionPending).
			Order("product_suggestions.created_at DESC").
			Scan(&rows)

		return c.JSON(fiber.Map{"suggestions": rows})
	}
}

func loadPendingSuggestion(c *fiber.Ctx) (*models.ProductSuggestion, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Öneri bulunamadı")
	}
	var sug models.ProductSuggestion
	if err := database.DB.First(&sug, id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Öneri bulunamadı")
	}
	if sug.Status != models.SuggestionPending {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Öneri zaten incelenmiş")
	}
	return &sug, nil
}

// POST /api/admin/suggestions/:id/approve – öneriden ürün oluşturur
func SuggestionApproveHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sug, err := loadPendingSuggestion(c)
		if err != nil {
			return err
		}

		if nameTaken(sug.ProductName, 0) {
			return c.Redirect("/api/admin/suggestions?error=duplicate_name", fiber.StatusFound)
		}

		unit := "kg"
		if sug.Unit != nil && validUnits[strings.ToLower(*sug.Unit)] {
			unit = strings.ToLower(*sug.Unit)
		}
		p := models.Product{
			Name:        sug.ProductName,
			Unit:        unit,
			Category:    sug.Category,
			Description: sug.Description,
			IsActive:    true,
			CreatedBy:   fmt.Sprintf("suggestion_%d", sug.ID),
		}
		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		now := time.Now()
		sug.Status = models.SuggestionApproved
		sug.ReviewedAt = &now
		database.DB.Save(sug)

		return c.Redirect("/api/admin/suggestions?success=approved", fiber.StatusFound)
	}
}

// POST /api/admin/suggestions/:id/reject
func SuggestionRejectHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sug, err := loadPendingSuggestion(c)
		if err != nil {
			return err
		}

		var body struct {
			Notes string `json:"notes" form:"notes"`
		}
		_ = c.BodyParser(&body)

		now := time.Now()
		sug.Status = models.SuggestionRejected
		sug.ReviewedAt = &now
		if notes := strings.TrimSpace(body.Notes); notes != "" {
			sug.AdminNotes = &notes
		}
		database.DB.Save(sug)

		return c.Redirect("/api/admin/suggestions?success=rejected", fiber.StatusFound)
	}
}
