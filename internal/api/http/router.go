package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revkae/hotel-management/internal/api/http/handlers"
	"github.com/revkae/hotel-management/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Home           *handlers.HomeHandler
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Hotels         *handlers.HotelsHandler
	Reservations   *handlers.ReservationsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Home.Index)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Get("/health", cfg.Health.Status)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Users.Me)

	users := api.Group("/users")
	users.Post("/", cfg.Users.Create)
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Patch("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	hotels := api.Group("/hotels")
	hotels.Post("/", cfg.Hotels.Create)
	hotels.Get("/", cfg.Hotels.List)
	hotels.Get("/:id", cfg.Hotels.Get)
	hotels.Patch("/:id", cfg.Hotels.Update)
	hotels.Delete("/:id", cfg.Hotels.Delete)

	reservations := api.Group("/reservations")
	reservations.Post("/", cfg.Reservations.Create)
	reservations.Get("/", cfg.Reservations.List)
	reservations.Get("/:id", cfg.Reservations.Get)
	reservations.Patch("/:id", cfg.Reservations.Update)
	reservations.Delete("/:id", cfg.Reservations.Delete)
}
