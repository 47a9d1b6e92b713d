package handlers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harutok/bookreview/database"
	"github.com/harutok/bookreview/middleware"
	"github.com/harutok/bookreview/models"
	"github.com/harutok/bookreview/routes"
)

// newTestApp wires the real routes against a fresh in-memory database. Each
// test gets its own database, named after the test so the shared-cache DSNs
// cannot collide.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Book{}, &models.Review{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	database.DB = db

	engine := html.New("../views", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	routes.AuthRoutes(app)
	routes.ReviewRoutes(app)
	routes.BookRoutes(app)
	return app
}

func createUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{Name: "Reader", Email: email, Password: "irrelevant"}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createBook(t *testing.T, title, author string, year *int) models.Book {
	t.Helper()
	book := models.Book{Title: title, Author: author, PublishedYear: year}
	if err := database.DB.Create(&book).Error; err != nil {
		t.Fatalf("create book: %v", err)
	}
	return book
}

func createReview(t *testing.T, bookID uint, userID *uuid.UUID, rating int) models.Review {
	t.Helper()
	review := models.Review{BookID: bookID, UserID: userID, Rating: rating}
	if err := database.DB.Create(&review).Error; err != nil {
		t.Fatalf("create review: %v", err)
	}
	return review
}

func sessionCookie(t *testing.T, userID uuid.UUID) *http.Cookie {
	t.Helper()
	token, err := middleware.IssueSession(userID)
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func get(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func intPtr(n int) *int {
	return &n
}
