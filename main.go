package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"devfair/site-api/config"
	_ "devfair/site-api/docs"
	"devfair/site-api/handlers"
	"devfair/site-api/internal/auth"
	"devfair/site-api/middleware"
)

// @title DevFair Site API
// @version 1.0
// @description Backend for the DevFair student-developer exhibition site.
// @BasePath /api
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	config.InitLogger(cfg.LogLevel)

	db, err := config.NewSupabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Supabase client: %v", err)
	}
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AdminTokenTTL)
	h := handlers.NewApplicationHandler(config.Log, db, tokens, cfg)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(config.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Site API is healthy",
		})
	})
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	adminOnly := middleware.AdminAuth(tokens)
	api := app.Group("/api")

	// Admin auth
	admin := api.Group("/admin")
	admin.Post("/login", h.Login)
	admin.Get("/verify", adminOnly, h.Verify)

	// Inquiries
	api.Post("/inquiry", h.CreateInquiry)
	api.Get("/inquiry", adminOnly, h.ListInquiries)
	api.Put("/inquiry/:id", adminOnly, h.UpdateInquiry)
	api.Delete("/inquiry/:id", adminOnly, h.DeleteInquiry)

	// Projects
	api.Get("/project", h.ListProjects)
	api.Get("/project/:id", h.GetProject)
	api.Post("/project", adminOnly, h.CreateProject)
	api.Put("/project/:id", adminOnly, h.UpdateProject)
	api.Put("/project/:id/gallery", adminOnly, h.UpdateGallery)
	api.Delete("/project/:id", adminOnly, h.DeleteProject)

	// Genres
	api.Get("/genre", h.ListGenres)
	api.Post("/genre", adminOnly, h.CreateGenre)

	// Uploads
	api.Post("/upload", adminOnly, h.Upload)

	log.Printf("Starting Site API on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
