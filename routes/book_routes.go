package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harutok/bookreview/handlers"
)

// BookRoutes must be registered after ReviewRoutes so the literal /reviews
// prefix is matched ahead of the :id wildcard.
func BookRoutes(app *fiber.App) {
	app.Get("/", handlers.ListBooks)
	app.Get("/add/", handlers.NewBook)
	app.Post("/add/", handlers.CreateBook)
	app.Get("/:id/", handlers.ShowBook)
	app.Get("/:id/edit/", handlers.EditBook)
	app.Post("/:id/edit/", handlers.UpdateBook)
	app.Get("/:id/delete/", handlers.ConfirmDeleteBook)
	app.Post("/:id/delete/", handlers.DeleteBook)
}
