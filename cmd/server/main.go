package main

import (
	"log"
	"strings"

	"pazarmetre-backend/internal/admin"
	"pazarmetre-backend/internal/analytics"
	"pazarmetre-backend/internal/business"
	"pazarmetre-backend/internal/catalog"
	"pazarmetre-backend/internal/config"
	"pazarmetre-backend/internal/database"
	"pazarmetre-backend/internal/location"
	"pazarmetre-backend/internal/metrics"
	"pazarmetre-backend/internal/ratelimit"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(corsOrigins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowCredentials: true,
	}))

	app.Use(metrics.Middleware())
	app.Use(analytics.Middleware(cfg.AnalyticsSalt))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Head("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/metrics", metrics.Handler())

	// Lokasyon kısa linkleri ve query tabanlı seçim
	app.Get("/setloc", location.SetQueryHandler())
	app.Get("/l/:city/:district", location.ShortLinkHandler())
	app.Get("/l/:city/:district/:nb", location.ShortLinkHandler())

	api := app.Group("/api")

	// Public
	api.Get("/lokasyon", location.OptionsHandler())
	api.Post("/lokasyon", location.SetHandler())
	api.Get("/vitrin", catalog.StorefrontHandler(cfg))
	api.Get("/urun", catalog.ProductDetailHandler(cfg))
	api.Get("/magazalar", catalog.BrandsHandler(cfg))
	api.Get("/magaza/:brand", catalog.BrandPageHandler(cfg))

	// Login uçları kaba kuvvete karşı IP başına sınırlanır
	loginLimiter := ratelimit.New(1, 5)

	// İşletme
	biz := api.Group("/business")
	biz.Post("/register", business.RegisterHandler())
	biz.Post("/login", loginLimiter.Middleware(), business.LoginHandler(cfg))
	biz.Get("/logout", business.LogoutHandler())

	bizAuth := biz.Group("")
	bizAuth.Use(business.AuthMiddleware(cfg))
	bizAuth.Get("/dashboard", business.DashboardHandler())
	bizAuth.Get("/prices/new", business.PriceFormHandler())
	bizAuth.Post("/prices", business.PriceAddHandler())
	bizAuth.Get("/prices/delete/:id", business.PriceDeleteHandler())
	bizAuth.Post("/suggestions", business.SuggestHandler())

	// Admin
	adm := api.Group("/admin")
	adm.Post("/login", loginLimiter.Middleware(), admin.LoginHandler(cfg))
	adm.Get("/logout", admin.LogoutHandler())

	admAuth := adm.Group("")
	admAuth.Use(admin.Middleware(cfg))
	admAuth.Get("/", admin.OverviewHandler())
	admAuth.Get("/alerts", admin.AlertsHandler())
	admAuth.Post("/alerts/:id/clear", admin.AlertClearHandler())
	admAuth.Get("/stats", admin.StatsHandler())
	admAuth.Post("/bulk", admin.BulkHandler())

	admAuth.Put("/offers/:id", admin.OfferUpdateHandler())
	admAuth.Delete("/offers/:id", admin.OfferDeleteHandler())

	admAuth.Get("/products", admin.ProductListHandler())
	admAuth.Post("/products", admin.ProductCreateHandler())
	admAuth.Get("/products/:id", admin.ProductGetHandler())
	admAuth.Put("/products/:id", admin.ProductUpdateHandler())
	admAuth.Delete("/products/:id", admin.ProductDeleteHandler())

	admAuth.Get("/suggestions", admin.SuggestionListHandler())
	admAuth.Post("/suggestions/:id/approve", admin.SuggestionApproveHandler())
	admAuth.Post("/suggestions/:id/reject", admin.SuggestionRejectHandler())

	admAuth.Get("/businesses", admin.BusinessListHandler())
	admAuth.Post("/businesses/:id/approve", admin.BusinessApproveHandler())
	admAuth.Post("/businesses/:id/toggle", admin.BusinessToggleHandler())
	admAuth.Delete("/businesses/:id", admin.BusinessDeleteHandler())

	admAuth.Post("/seed/products", admin.SeedProductsHandler())
	admAuth.Post("/seed/branches", admin.SeedBranchesHandler())
	admAuth.Get("/export/prices", admin.ExportPricesHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
