package handlers_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/harutok/bookreview/database"
	"github.com/harutok/bookreview/middleware"
	"github.com/harutok/bookreview/models"
)

func TestRegisterCreatesAccountAndSignsIn(t *testing.T) {
	app := newTestApp(t)

	resp := postForm(t, app, "/register", url.Values{
		"name":     {"Haru"},
		"email":    {"haru@example.com"},
		"password": {"correct horse"},
	})
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}

	var sessionSet bool
	for _, ck := range resp.Cookies() {
		if ck.Name == middleware.SessionCookie && ck.Value != "" {
			sessionSet = true
		}
	}
	if !sessionSet {
		t.Fatalf("registration should set a session cookie")
	}

	var user models.User
	if err := database.DB.First(&user, "email = ?", "haru@example.com").Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if user.Password == "correct horse" {
		t.Fatalf("password stored in plaintext")
	}
}

func TestRegisterDuplicateEmailRerenders(t *testing.T) {
	app := newTestApp(t)
	createUser(t, "taken@example.com")

	resp := postForm(t, app, "/register", url.Values{
		"name":     {"Haru"},
		"email":    {"taken@example.com"},
		"password": {"supersecret"},
	})
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "already exists") {
		t.Fatalf("expected duplicate-email message:\n%s", body)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newTestApp(t)

	// Register through the handler so the stored password is hashed.
	postForm(t, app, "/register", url.Values{
		"name":     {"Haru"},
		"email":    {"haru@example.com"},
		"password": {"supersecret"},
	})

	resp := postForm(t, app, "/login", url.Values{
		"email":    {"haru@example.com"},
		"password": {"wrong"},
	})
	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "Invalid email or password.") {
		t.Fatalf("expected the generic login failure message:\n%s", body)
	}

	resp = postForm(t, app, "/login", url.Values{
		"email":    {"haru@example.com"},
		"password": {"supersecret"},
	})
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("correct password should sign in, got %d", resp.StatusCode)
	}
}
