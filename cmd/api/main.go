package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	config "github.com/harutok/bookreview/configs"
	"github.com/harutok/bookreview/database"
	"github.com/harutok/bookreview/routes"
)

func main() {
	database.ConnectDB()
	database.Migrate()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		AppName:      "Book Review",
		Views:        engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.AuthRoutes(app)
	routes.ReviewRoutes(app)
	routes.BookRoutes(app)

	port := config.Config("PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code == fiber.StatusNotFound {
		return c.Status(code).Render("errors/404", fiber.Map{}, "layouts/main")
	}

	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(code).Render("errors/500", fiber.Map{}, "layouts/main")
}
