package forms

import (
	"strconv"
	"strings"
)

// BookForm carries the fields of the book create/edit form. PublishedYear is
// kept as the raw input so a rejected submission re-renders exactly what the
// user typed.
type BookForm struct {
	Title         string `form:"title" validate:"required,max=200"`
	Author        string `form:"author" validate:"required,max=200"`
	PublishedYear string `form:"published_year" validate:"omitempty,number"`
	ISBN          string `form:"isbn" validate:"max=13"`
	Description   string `form:"description"`
}

func (f *BookForm) Validate() map[string]string {
	f.Title = strings.TrimSpace(f.Title)
	f.Author = strings.TrimSpace(f.Author)
	f.PublishedYear = strings.TrimSpace(f.PublishedYear)
	f.ISBN = strings.TrimSpace(f.ISBN)
	return FieldErrors(validate.Struct(f))
}

// Year returns the published year as a nullable int. Call after Validate; a
// blank field maps to nil.
func (f *BookForm) Year() *int {
	if f.PublishedYear == "" {
		return nil
	}
	n, err := strconv.Atoi(f.PublishedYear)
	if err != nil {
		return nil
	}
	return &n
}
