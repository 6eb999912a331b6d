package location

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	CookieCity         = "city"
	CookieDistrict     = "district"
	CookieNeighborhood = "nb"

	cookieMaxAge = 90 * 24 * time.Hour
)

// Cookie'ler UTF-8 güvenliği için URL-encode yazılır, okurken decode edilir.
func readCookie(c *fiber.Ctx, key string) string {
	v := c.Cookies(key)
	if v == "" {
		return ""
	}
	dec, err := url.QueryUnescape(v)
	if err != nil {
		return v
	}
	return dec
}

// Get, seçili lokasyonu (il, ilçe, mahalle) cookie'lerden okur.
func Get(c *fiber.Ctx) (city, district, nb string) {
	return readCookie(c, CookieCity), readCookie(c, CookieDistrict), readCookie(c, CookieNeighborhood)
}

// Set, lokasyon cookie'lerini 90 günlük yazar; boş mahalle cookie'yi siler.
func Set(c *fiber.Ctx, city, district, nb string) {
	expires := time.Now().Add(cookieMaxAge)
	c.Cookie(&fiber.Cookie{
		Name: CookieCity, Value: url.QueryEscape(city),
		Expires: expires, SameSite: "Lax", Path: "/",
	})
	c.Cookie(&fiber.Cookie{
		Name: CookieDistrict, Value: url.QueryEscape(district),
		Expires: expires, SameSite: "Lax", Path: "/",
	})
	if nb != "" {
		c.Cookie(&fiber.Cookie{
			Name: CookieNeighborhood, Value: url.QueryEscape(nb),
			Expires: expires, SameSite: "Lax", Path: "/",
		})
	} else {
		c.ClearCookie(CookieNeighborhood)
	}
}
