package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harutok/bookreview/handlers"
	"github.com/harutok/bookreview/middleware"
)

func ReviewRoutes(app *fiber.App) {
	// Reviews are only submitted via POST; a GET on the add path bounces
	// back to the book's detail page.
	app.Get("/:id/reviews/add/", middleware.Protected(), handlers.AddReviewRedirect)
	app.Post("/:id/reviews/add/", middleware.Protected(), handlers.AddReview)

	reviews := app.Group("/reviews", middleware.Protected())
	reviews.Get("/:id/edit/", handlers.EditReview)
	reviews.Post("/:id/edit/", handlers.UpdateReview)
	reviews.Get("/:id/delete/", handlers.ConfirmDeleteReview)
	reviews.Post("/:id/delete/", handlers.DeleteReview)
}
