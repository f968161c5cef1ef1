// main.go
package main

import (
	"log"
	"os"
	"time"

	"github.com/thelonewolf39/Language-Learning-web/database"
	"github.com/thelonewolf39/Language-Learning-web/handlers"
	"github.com/thelonewolf39/Language-Learning-web/middleware"
	"github.com/thelonewolf39/Language-Learning-web/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize database
	database.InitDB()
	db := database.GetDB()

	// Lesson content
	lessons := services.NewLessonCatalog()
	lessonsFile := getEnv("LESSONS_FILE", services.DefaultLessonsFile)
	if err := lessons.Load(lessonsFile); err != nil {
		log.Fatalf("Failed to load lessons: %v", err)
	}

	// Domain services. Sessions live in memory only: restarting the
	// process logs every client out.
	sessions := services.NewSessionRegistry()
	locks := services.NewUserLocks()
	apiKeys := services.NewAPIKeyService(db)
	achievements := services.NewAchievementService(db)
	progress := services.NewProgressService(db, achievements, locks)
	avatars := services.NewAvatarService(db, locks)
	stats := services.NewStatsService(db, lessons)

	// Seed catalogs (insert-if-absent, safe on every boot)
	if err := achievements.SeedCatalog(); err != nil {
		log.Fatalf("Failed to seed achievement catalog: %v", err)
	}
	if err := avatars.SeedCatalog(); err != nil {
		log.Fatalf("Failed to seed avatar catalog: %v", err)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(db, sessions)
	keyHandler := handlers.NewAPIKeyHandler(apiKeys)
	lessonHandler := handlers.NewLessonHandler(lessons)
	progressHandler := handlers.NewProgressHandler(progress)
	achievementHandler := handlers.NewAchievementHandler(achievements)
	statsHandler := handlers.NewStatsHandler(stats)
	avatarHandler := handlers.NewAvatarHandler(avatars)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.RateLimitMiddleware())

	sessionAuth := middleware.SessionAuth(sessions)
	apiKeyAuth := middleware.APIKeyAuth(apiKeys)

	// API Routes
	api := app.Group("/api/v1")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.AuthRateLimitMiddleware())
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// User routes (session auth)
	userGroup := api.Group("/users")
	userGroup.Use(sessionAuth)
	userGroup.Get("/me", authHandler.Me)

	// API key management (session auth)
	keyGroup := api.Group("/keys")
	keyGroup.Use(sessionAuth)
	keyGroup.Post("/", keyHandler.Issue)
	keyGroup.Get("/", keyHandler.List)
	keyGroup.Delete("/:id", keyHandler.Revoke)

	// Lesson catalog (public, static content)
	api.Get("/lessons", lessonHandler.List)
	api.Get("/lessons/:id", lessonHandler.Get)

	// Progress routes (API key auth)
	progressGroup := api.Group("/progress")
	progressGroup.Use(apiKeyAuth)
	progressGroup.Get("/", progressHandler.List)
	progressGroup.Get("/:lessonId", progressHandler.GetLesson)
	progressGroup.Post("/", progressHandler.Update)

	// Achievement routes
	api.Get("/achievements", achievementHandler.Catalog)
	api.Get("/achievements/me", apiKeyAuth, achievementHandler.Mine)

	// Stats (API key auth)
	api.Get("/stats", apiKeyAuth, statsHandler.Get)

	// Avatar routes (session auth)
	avatarGroup := api.Group("/avatar")
	avatarGroup.Use(sessionAuth)
	avatarGroup.Get("/styles", avatarHandler.ListStyles)
	avatarGroup.Post("/purchase", avatarHandler.Purchase)
	avatarGroup.Put("/", avatarHandler.Update)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("📚 Lessons loaded: %d", lessons.Count())

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// Helper functions

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
