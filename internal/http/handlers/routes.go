package handlers

import "github.com/gofiber/fiber/v2"

// Register mounts the JSON API. The slug lookup must be registered before
// /products/:id so Fiber does not swallow "slug" as an id.
func Register(app *fiber.App, d *Deps) {
	api := app.Group("/api")

	api.Post("/auth/login", d.AuthHandler.Login)

	api.Get("/products", d.ProductHandler.List)
	api.Get("/products/slug/:slug", d.ProductHandler.GetBySlug)
	api.Get("/products/:id", d.ProductHandler.Get)
	api.Post("/products", d.ProductHandler.Create)
	api.Patch("/products/:id", d.ProductHandler.Update)
	api.Delete("/products/:id", d.ProductHandler.Delete)

	api.Get("/clients", d.ClientHandler.List)
	api.Get("/clients/:id", d.ClientHandler.Get)
	api.Post("/clients", d.ClientHandler.Create)
	api.Patch("/clients/:id", d.ClientHandler.Update)

	api.Get("/quotes", d.QuoteHandler.List)
	api.Get("/quotes/:id", d.QuoteHandler.Get)
	api.Post("/quotes", d.QuoteHandler.Create)
	api.Patch("/quotes/:id", d.QuoteHandler.Update)
	api.Delete("/quotes/:id", d.QuoteHandler.Delete)
	api.Post("/quotes/:id/convert", d.QuoteHandler.Convert)

	api.Get("/orders", d.OrderHandler.List)
	api.Get("/orders/:id", d.OrderHandler.Get)
	api.Post("/orders", d.OrderHandler.Create)
	api.Patch("/orders/:id", d.OrderHandler.Update)
	api.Delete("/orders/:id", d.OrderHandler.Delete)

	api.Get("/dashboard/stats", d.DashboardHandler.Stats)

	api.Get("/settings", d.SettingsHandler.Get)
	api.Patch("/settings", d.SettingsHandler.Update)

	api.Post("/upload", d.UploadHandler.Image)
}
