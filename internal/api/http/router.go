package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/wellness-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Users    *handlers.UsersHandler
	Chat     *handlers.ChatHandler
	Risk     *handlers.RiskHandler
	Insights *handlers.InsightsHandler
	Import   *handlers.ImportHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Root)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register", cfg.Users.Register)
	app.Post("/chat", cfg.Chat.Chat)

	app.Get("/analyze/:user_id", cfg.Risk.Analyze)
	app.Get("/alerts/:user_id", cfg.Risk.Alerts)

	app.Get("/moods/:user_id", cfg.Insights.Moods)
	app.Get("/trend/:user_id", cfg.Insights.Trend)

	app.Post("/assessments/import", cfg.Import.ImportAssessments)
}
