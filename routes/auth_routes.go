package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harutok/bookreview/handlers"
)

func AuthRoutes(app *fiber.App) {
	app.Get("/register", handlers.ShowRegister)
	app.Post("/register", handlers.Register)
	app.Get("/login", handlers.ShowLogin)
	app.Post("/login", handlers.Login)
	app.Post("/logout", handlers.Logout)
}
