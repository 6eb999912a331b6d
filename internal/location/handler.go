package location

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

type setRequest struct {
	City     string `json:"city" form:"city"`
	District string `json:"district" form:"district"`
	Nb       string `json:"nb" form:"nb"`
}

// GET /api/lokasyon – il/ilçe seçenekleri ve mevcut seçim
func OptionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		city, district, nb := Get(c)
		return c.JSON(fiber.Map{
			"provinces": Provinces,
			"current": fiber.Map{
				"city":     city,
				"district": district,
				"nb":       nb,
			},
		})
	}
}

// POST /api/lokasyon – lokasyon kaydet, vitrine yönlendir
func SetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body setRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.City == "" || body.District == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İl ve ilçe zorunlu")
		}
		Set(c, body.City, body.District, body.Nb)
		return c.Redirect("/", fiber.StatusFound)
	}
}

// GET /setloc?city=..&district=..&nb=..&next=..
func SetQueryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		city := c.Query("city")
		district := c.Query("district")
		if city == "" || district == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İl ve ilçe zorunlu")
		}
		Set(c, city, district, c.Query("nb"))
		next := c.Query("next", "/")
		if next == "" {
			next = "/"
		}
		return c.Redirect(next, fiber.StatusFound)
	}
}

// GET /l/:city/:district ve /l/:city/:district/:nb – paylaşılabilir kısa linkler
func ShortLinkHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		city := decodeParam(c, "city")
		district := decodeParam(c, "district")
		if city == "" || district == "" {
			return fiber.NewError(fiber.StatusBadRequest, "İl ve ilçe zorunlu")
		}
		Set(c, city, district, decodeParam(c, "nb"))
		return c.Redirect("/", fiber.StatusFound)
	}
}

// Path parametreleri percent-encoded gelir (Türkçe karakterler)
func decodeParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if raw == "" {
		return ""
	}
	if dec, err := url.PathUnescape(raw); err == nil {
		return dec
	}
	return raw
}
