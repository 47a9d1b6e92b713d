package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/harutok/bookreview/forms"
	"github.com/harutok/bookreview/middleware"
	"github.com/harutok/bookreview/models"
	"github.com/harutok/bookreview/repository"
)

// AddReview creates a review for a book on behalf of the signed-in caller.
// An invalid submission (missing or out-of-range rating) is dropped and the
// caller is redirected back to the detail page without an error message,
// matching the long-standing behaviour of this form.
func AddReview(c *fiber.Ctx) error {
	book, err := findBook(c)
	if err != nil {
		return err
	}
	detail := fmt.Sprintf("/%d/", book.ID)

	// Protected() already bounced anonymous callers to /login; a claims
	// failure here means a token we did not mint.
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return fmt.Errorf("session claims: %w", err)
	}

	var form forms.ReviewForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect(detail, fiber.StatusSeeOther)
	}
	if errs := form.Validate(); len(errs) > 0 {
		return c.Redirect(detail, fiber.StatusSeeOther)
	}

	review := models.Review{
		BookID:  book.ID,
		UserID:  &userID,
		Rating:  form.Rating,
		Comment: form.Comment,
	}
	if err := repository.CreateReview(&review); err != nil {
		return fmt.Errorf("add review to book %d: %w", book.ID, err)
	}

	return c.Redirect(detail, fiber.StatusSeeOther)
}

// AddReviewRedirect handles non-POST requests to the add-review path by
// bouncing back to the book's detail page.
func AddReviewRedirect(c *fiber.Ctx) error {
	book, err := findBook(c)
	if err != nil {
		return err
	}
	return c.Redirect(fmt.Sprintf("/%d/", book.ID), fiber.StatusSeeOther)
}

func EditReview(c *fiber.Ctx) error {
	review, err := findOwnReview(c)
	if err != nil {
		return err
	}

	form := forms.ReviewForm{Rating: review.Rating, Comment: review.Comment}
	return c.Render("books/review_form", fiber.Map{
		"Form":   &form,
		"Review": review,
		"Errors": map[string]string{},
	}, "layouts/main")
}

func UpdateReview(c *fiber.Ctx) error {
	review, err := findOwnReview(c)
	if err != nil {
		return err
	}

	var form forms.ReviewForm
	if err := c.BodyParser(&form); err != nil {
		form = forms.ReviewForm{}
	}
	if errs := form.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).Render("books/review_form", fiber.Map{
			"Form":   &form,
			"Review": review,
			"Errors": errs,
		}, "layouts/main")
	}

	review.Rating = form.Rating
	review.Comment = form.Comment
	if err := repository.UpdateReview(review); err != nil {
		return fmt.Errorf("update review %d: %w", review.ID, err)
	}

	return c.Redirect(fmt.Sprintf("/%d/", review.BookID), fiber.StatusSeeOther)
}

func ConfirmDeleteReview(c *fiber.Ctx) error {
	review, err := findOwnReview(c)
	if err != nil {
		return err
	}

	return c.Render("books/review_confirm_delete", fiber.Map{
		"Review": review,
	}, "layouts/main")
}

func DeleteReview(c *fiber.Ctx) error {
	review, err := findOwnReview(c)
	if err != nil {
		return err
	}

	if err := repository.DeleteReview(review); err != nil {
		return fmt.Errorf("delete review %d: %w", review.ID, err)
	}

	return c.Redirect(fmt.Sprintf("/%d/", review.BookID), fiber.StatusSeeOther)
}

// findOwnReview resolves the :id parameter against the caller's own reviews.
// Someone else's review yields the same NotFound as a missing id.
func findOwnReview(c *fiber.Ctx) (*models.Review, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, err
	}

	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return nil, fmt.Errorf("session claims: %w", err)
	}

	review, err := repository.FindReviewOwnedBy(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, fmt.Errorf("find review %d: %w", id, err)
	}
	return review, nil
}
