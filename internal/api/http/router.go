package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/book-registry/internal/api/http/handlers"
	"github.com/spec-kit/book-registry/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Authors        *handlers.AuthorsHandler
	Books          *handlers.BooksHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Reads are public; every mutation on
// authors and books requires authentication, and account mutations
// additionally require ownership (enforced in the service).
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/token", cfg.Auth.Login)

	users := app.Group("/users")
	users.Post("/", cfg.Users.Register)
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.AuthMiddleware.Handle, cfg.Users.Update)
	users.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Users.Delete)

	authors := app.Group("/authors")
	authors.Get("/", cfg.Authors.List)
	authors.Get("/:id", cfg.Authors.Get)
	authors.Post("/", cfg.AuthMiddleware.Handle, cfg.Authors.Create)
	authors.Patch("/:id", cfg.AuthMiddleware.Handle, cfg.Authors.Update)
	authors.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Authors.Delete)

	books := app.Group("/books")
	books.Get("/", cfg.Books.List)
	books.Get("/:id", cfg.Books.Get)
	books.Post("/", cfg.AuthMiddleware.Handle, cfg.Books.Create)
	books.Patch("/:id", cfg.AuthMiddleware.Handle, cfg.Books.Update)
	books.Delete("/:id", cfg.AuthMiddleware.Handle, cfg.Books.Delete)
}
