package business

import (
	"fmt"
	"time"

	"pazarmetre-backend/internal/config"
	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenCookie = "business_token"
	CtxKey      = "business"

	tokenTTL = 7 * 24 * time.Hour // 7 gün
)

type Claims struct {
	BusinessID uint `json:"business_id"`
	jwt.RegisteredClaims
}

func GenerateToken(secret string, businessID uint) (string, error) {
	claims := &Claims{
		BusinessID: businessID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("geçersiz imzalama yöntemi")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("geçersiz veya süresi dolmuş token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("token çözümlenemedi")
	}
	return claims, nil
}

// Current, cookie'deki token'dan işletmeyi yükler; başarısızlıkta nil.
func Current(c *fiber.Ctx, cfg *config.Config) *models.Business {
	tokenStr := c.Cookies(TokenCookie)
	if tokenStr == "" {
		return nil
	}
	claims, err := ParseToken(cfg.JWTSecret, tokenStr)
	if err != nil {
		return nil
	}
	var biz models.Business
	if err := database.DB.First(&biz, claims.BusinessID).Error; err != nil {
		return nil
	}
	return &biz
}

// AuthMiddleware orijinal akışı korur: oturum yoksa login'e, onaysızsa
// bekleme sayfasına, pasifse bilgilendirme sayfasına yönlendirilir —
// hata fırlatılmaz.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		biz := Current(c, cfg)
		if biz == nil {
			return c.Redirect("/business/login?error=login_required", fiber.StatusFound)
		}
		if !biz.IsApproved {
			return c.Redirect("/business/pending", fiber.StatusFound)
		}
		if !biz.IsActive {
			return c.Redirect("/business/inactive", fiber.StatusFound)
		}
		c.Locals(CtxKey, biz)
		return c.Next()
	}
}

func fromCtx(c *fiber.Ctx) *models.Business {
	biz, _ := c.Locals(CtxKey).(*models.Business)
	return biz
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(plain, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
