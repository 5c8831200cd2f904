package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/Gaurav-yadav-03/moodscape-flow/internal/analysis"
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/config"
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/handlers"
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/insights"
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/journal"
	"github.com/Gaurav-yadav-03/moodscape-flow/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	journalHandler *journal.Handler,
	insightsHandler *insights.Handler,
	analysisHandler *analysis.Handler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter 10 req/min limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes sit outside the public group so the JWT
	// middleware never touches register/login/refresh.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Journal (protected)
	entries := api.Group("/journal", middleware.JWTProtected(cfg))
	entries.Post("/", journalHandler.Create)
	entries.Get("/", journalHandler.List)
	entries.Get("/search", journalHandler.Search)
	entries.Get("/:id", journalHandler.Get)
	entries.Put("/:id", journalHandler.Update)
	entries.Delete("/:id", journalHandler.Delete)
	entries.Post("/:id/analyze", journalHandler.Analyze)

	// Insights (protected)
	stats := api.Group("/insights", middleware.JWTProtected(cfg))
	stats.Get("/streaks", insightsHandler.Streaks)
	stats.Get("/trends", insightsHandler.Trends)
	stats.Get("/calendar", insightsHandler.Calendar)
	stats.Get("/badges", insightsHandler.Badges)

	// Ad-hoc AI analysis (protected)
	api.Post("/ai/analyze", middleware.JWTProtected(cfg), analysisHandler.Analyze)
}
