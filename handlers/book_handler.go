package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/harutok/bookreview/forms"
	"github.com/harutok/bookreview/models"
	"github.com/harutok/bookreview/repository"
)

// ListBooks renders the catalogue, filtered by the optional q, year_from,
// year_to and rating query parameters. Malformed numeric parameters are
// ignored rather than rejected.
func ListBooks(c *fiber.Ctx) error {
	filter := repository.BookFilter{Query: strings.TrimSpace(c.Query("q"))}
	if n, ok := digits(c.Query("year_from")); ok {
		filter.YearFrom = &n
	}
	if n, ok := digits(c.Query("year_to")); ok {
		filter.YearTo = &n
	}
	if n, ok := digits(c.Query("rating")); ok {
		filter.Rating = &n
	}

	page := 1
	if n, ok := digits(c.Query("page")); ok && n > 0 {
		page = n
	}

	books, err := repository.FilterBooks(filter, page)
	if err != nil {
		return fmt.Errorf("list books: %w", err)
	}

	return c.Render("books/list", fiber.Map{
		"Books":    books,
		"Query":    c.Query("q"),
		"YearFrom": c.Query("year_from"),
		"YearTo":   c.Query("year_to"),
		"Rating":   c.Query("rating"),
		"Page":     page,
		"PrevPage": page - 1,
		"NextPage": page + 1,
		"HasMore":  len(books) == repository.BooksPerPage,
	}, "layouts/main")
}

// ShowBook renders a book's detail page: the book, its reviews newest first,
// and a blank review form.
func ShowBook(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	book, err := repository.FindBookWithReviews(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.ErrNotFound
		}
		return fmt.Errorf("show book %d: %w", id, err)
	}

	return c.Render("books/detail", fiber.Map{
		"Book":    book,
		"Reviews": book.Reviews,
		"Form":    &forms.ReviewForm{},
	}, "layouts/main")
}

func NewBook(c *fiber.Ctx) error {
	return c.Render("books/form", fiber.Map{
		"Form":   &forms.BookForm{},
		"Errors": map[string]string{},
		"Action": "/add/",
	}, "layouts/main")
}

func CreateBook(c *fiber.Ctx) error {
	var form forms.BookForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).Render("books/form", fiber.Map{
			"Form":   &form,
			"Errors": errs,
			"Action": "/add/",
		}, "layouts/main")
	}

	book := models.Book{
		Title:         form.Title,
		Author:        form.Author,
		ISBN:          form.ISBN,
		Description:   form.Description,
		PublishedYear: form.Year(),
	}
	if err := repository.CreateBook(&book); err != nil {
		return fmt.Errorf("create book: %w", err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func EditBook(c *fiber.Ctx) error {
	book, err := findBook(c)
	if err != nil {
		return err
	}

	form := forms.BookForm{
		Title:       book.Title,
		Author:      book.Author,
		ISBN:        book.ISBN,
		Description: book.Description,
	}
	if book.PublishedYear != nil {
		form.PublishedYear = strconv.Itoa(*book.PublishedYear)
	}

	return c.Render("books/form", fiber.Map{
		"Form":   &form,
		"Errors": map[string]string{},
		"Action": fmt.Sprintf("/%d/edit/", book.ID),
	}, "layouts/main")
}

func UpdateBook(c *fiber.Ctx) error {
	book, err := findBook(c)
	if err != nil {
		return err
	}

	var form forms.BookForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).Render("books/form", fiber.Map{
			"Form":   &form,
			"Errors": errs,
			"Action": fmt.Sprintf("/%d/edit/", book.ID),
		}, "layouts/main")
	}

	book.Title = form.Title
	book.Author = form.Author
	book.ISBN = form.ISBN
	book.Description = form.Description
	book.PublishedYear = form.Year()
	if err := repository.UpdateBook(book); err != nil {
		return fmt.Errorf("update book %d: %w", book.ID, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// ConfirmDeleteBook renders the confirmation page; the deletion itself only
// happens on the POST handled by DeleteBook.
func ConfirmDeleteBook(c *fiber.Ctx) error {
	book, err := findBook(c)
	if err != nil {
		return err
	}

	return c.Render("books/confirm_delete", fiber.Map{
		"Book": book,
	}, "layouts/main")
}

// DeleteBook removes the book and, with it, every one of its reviews.
func DeleteBook(c *fiber.Ctx) error {
	book, err := findBook(c)
	if err != nil {
		return err
	}

	if err := repository.DeleteBook(book); err != nil {
		return fmt.Errorf("delete book %d: %w", book.ID, err)
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func findBook(c *fiber.Ctx) (*models.Book, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return nil, err
	}
	book, err := repository.FindBook(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.ErrNotFound
		}
		return nil, fmt.Errorf("find book %d: %w", id, err)
	}
	return book, nil
}
