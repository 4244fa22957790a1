package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/parokitomang/content-service/internal/api/http/handlers"
	"github.com/parokitomang/content-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Content        *handlers.ContentHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Reads are public, writes sit
// behind the bearer gate.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")

	api.Get("/health", cfg.Health.Health)
	api.Get("/health/ready", cfg.Health.Ready)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	api.Get("/sliders", cfg.Content.ListSliders)
	api.Post("/sliders", cfg.AuthMiddleware.Handle, cfg.Content.CreateSlider)

	api.Get("/menus", cfg.Content.ListMenus)
	api.Post("/menus", cfg.AuthMiddleware.Handle, cfg.Content.CreateMenu)
}
