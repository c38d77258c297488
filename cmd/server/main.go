package main

import (
	"log"
	"strings"

	"eczane-backend/internal/audit"
	"eczane-backend/internal/auth"
	"eczane-backend/internal/cache"
	"eczane-backend/internal/config"
	"eczane-backend/internal/database"
	"eczane-backend/internal/inventory"
	"eczane-backend/internal/models"
	"eczane-backend/internal/sales"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)
	cache.Init(cfg.RedisAddr)

	productStore := inventory.NewGormStore(database.DB)
	saleStore := sales.NewGormStore(database.DB)
	resolver := inventory.NewResolver(productStore)
	executor := sales.NewExecutor(productStore, saleStore)

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

	app.Use(recover.New())
	app.Use(logger.New())

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Ürün kataloğu
	protected.Get("/products", inventory.ListProductsHandler(productStore))
	protected.Get("/products/resolve", inventory.ResolveProductHandler(resolver))
	protected.Get("/products/:id", inventory.GetProductHandler(productStore))

	// Ürün yönetimi (sadece admin)
	adminRoutes := protected.Group("")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))
	adminRoutes.Post("/products", inventory.CreateProductHandler(productStore))
	adminRoutes.Put("/products/:id", inventory.UpdateProductHandler(productStore))
	adminRoutes.Delete("/products/:id", inventory.DeleteProductHandler(productStore))

	// Teslim işlemleri ve satış kayıtları
	protected.Post("/dispense", sales.DispenseHandler(resolver, executor))
	protected.Get("/sales", sales.ListSalesHandler(saleStore))
	protected.Get("/sales/statistics", sales.StatisticsHandler(saleStore))
	protected.Get("/sales/export", sales.ExportSalesHandler(saleStore))

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
