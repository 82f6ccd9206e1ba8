package main

import (
	"backend-promo/internal/config"
	"backend-promo/internal/fixtures"
	"backend-promo/internal/http/handler"
	"backend-promo/internal/http/middleware"
	"backend-promo/internal/realtime"
	"log"
	"os"
	"runtime"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
	})

	config.LoadEnv()
	config.InitRedis()
	config.InitDB()
	defer config.CloseDB()

	// Konten awal dari fixture bawaan, hanya kalau tabel masih kosong
	fixtures.Seed(config.DB)

	go realtime.RunLandingBroadcaster()

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API promo Tanyo jalan",
		})
	})

	app.Post("/san/login", handler.Login)
	app.Get("/san/export", middleware.BasicAuth(), handler.ExportDatabase)

	// Public content endpoints
	app.Get("/api/sponsors", handler.GetAllSponsors)
	app.Get("/api/faqs", handler.GetAllFAQs)
	app.Get("/api/faqs/grouped", handler.GetGroupedFAQs)
	app.Get("/api/faqs/categories", handler.GetAllFAQCategories)
	app.Get("/api/site", handler.GetSiteConfig)

	// Fragment HTML untuk shell landing page
	app.Get("/pages/sponsors", handler.GetSponsorPage)
	app.Get("/pages/faq", handler.GetFAQPage)

	// WebSocket endpoints
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/site", websocket.New(handler.SiteWS))
	app.Get("/ws/demo", websocket.New(handler.DemoChatWS))

	// Base API (semua wajib login)
	api := app.Group("/api", middleware.JWTAuth())

	// Auth
	api.Post("/logout", handler.Logout)

	// ===== SUPER ADMIN ROUTES =====
	// Users
	api.Get("/users/paginate", middleware.RoleAuth("super_user"), handler.GetAllUsersPagination)
	api.Get("/users", middleware.RoleAuth("super_user"), handler.GetAllUsers)
	api.Get("/users/:id", middleware.RoleAuth("super_user"), handler.GetUserByID)
	api.Post("/users", middleware.RoleAuth("super_user"), handler.CreateUser)
	api.Put("/users/:id", middleware.RoleAuth("super_user"), handler.UpdateUser)
	api.Delete("/users/:id/permanent", middleware.RoleAuth("super_user"), handler.HardDeleteUser)

	// Site config
	api.Post("/site", middleware.RoleAuth("super_user"), handler.CreateSiteConfig)
	api.Put("/site", middleware.RoleAuth("super_user"), handler.UpdateSiteConfig)

	// Statistik kunjungan
	api.Get("/stats/views", middleware.RoleAuth("super_user"), handler.GetViewStatistics)

	// ===== CONTENT ROUTES (super_user & editor) =====
	// Sponsors
	api.Get("/sponsors/paginate", middleware.RoleAuth("super_user", "editor"), handler.GetAllSponsorsPagination)
	api.Get("/sponsors/:id", middleware.RoleAuth("super_user", "editor"), handler.GetSponsorByID)
	api.Post("/sponsors", middleware.RoleAuth("super_user", "editor"), handler.CreateSponsor)
	api.Put("/sponsors/:id", middleware.RoleAuth("super_user", "editor"), handler.UpdateSponsor)
	api.Delete("/sponsors/:id", middleware.RoleAuth("super_user", "editor"), handler.DeleteSponsor)
	api.Delete("/sponsors/:id/permanent", middleware.RoleAuth("super_user"), handler.HardDeleteSponsor)

	// FAQ categories
	api.Get("/faq-categories/:id", middleware.RoleAuth("super_user", "editor"), handler.GetFAQCategoryByID)
	api.Post("/faq-categories", middleware.RoleAuth("super_user", "editor"), handler.CreateFAQCategory)
	api.Put("/faq-categories/:id", middleware.RoleAuth("super_user", "editor"), handler.UpdateFAQCategory)
	api.Delete("/faq-categories/:id", middleware.RoleAuth("super_user", "editor"), handler.DeleteFAQCategory)
	api.Delete("/faq-categories/:id/permanent", middleware.RoleAuth("super_user"), handler.HardDeleteFAQCategory)

	// FAQ items
	api.Get("/faqs/paginate", middleware.RoleAuth("super_user", "editor"), handler.GetAllFAQsPagination)
	api.Get("/faqs/:id", middleware.RoleAuth("super_user", "editor"), handler.GetFAQByID)
	api.Post("/faqs", middleware.RoleAuth("super_user", "editor"), handler.CreateFAQ)
	api.Put("/faqs/:id", middleware.RoleAuth("super_user", "editor"), handler.UpdateFAQ)
	api.Delete("/faqs/:id/permanent", middleware.RoleAuth("super_user"), handler.HardDeleteFAQ)

	addr := os.Getenv("APP_HOST") + ":" + os.Getenv("APP_PORT")
	log.Println("Server jalan di", addr)
	log.Fatal(app.Listen(addr))
}
