package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/harutok/bookreview/database"
	"github.com/harutok/bookreview/models"
)

const BooksPerPage = 20

// BookFilter carries the optional listing filters. Nil / empty fields are
// disabled; the handlers only populate a field from a well-formed query
// parameter, so a malformed value never reaches here.
type BookFilter struct {
	Query    string
	YearFrom *int
	YearTo   *int
	Rating   *int
}

// FilterBooks returns one page of the catalogue, newest first. The rating
// filter joins through reviews and must not repeat a book that has several
// matching reviews, hence the DISTINCT.
func FilterBooks(f BookFilter, page int) ([]models.Book, error) {
	q := database.DB.Model(&models.Book{})

	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", like, like)
	}
	if f.YearFrom != nil {
		q = q.Where("published_year >= ?", *f.YearFrom)
	}
	if f.YearTo != nil {
		q = q.Where("published_year <= ?", *f.YearTo)
	}
	if f.Rating != nil {
		q = q.Distinct("books.*").
			Joins("JOIN reviews ON reviews.book_id = books.id").
			Where("reviews.rating = ?", *f.Rating)
	}

	if page < 1 {
		page = 1
	}

	var books []models.Book
	err := q.Order("books.id DESC").
		Limit(BooksPerPage).
		Offset((page - 1) * BooksPerPage).
		Find(&books).Error
	return books, err
}

func FindBook(id uint) (*models.Book, error) {
	var book models.Book
	if err := database.DB.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// FindBookWithReviews loads a book and its reviews newest first, with each
// review's author for display.
func FindBookWithReviews(id uint) (*models.Book, error) {
	var book models.Book
	err := database.DB.
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.id DESC")
		}).
		Preload("Reviews.User").
		First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func CreateBook(book *models.Book) error {
	return database.DB.Create(book).Error
}

func UpdateBook(book *models.Book) error {
	return database.DB.Save(book).Error
}

// DeleteBook removes a book and all of its reviews. The reviews are deleted
// explicitly rather than relying on the FK constraint, which sqlite only
// honours with foreign keys switched on.
func DeleteBook(book *models.Book) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", book.ID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(book).Error
	})
}
