package middleware

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	config "github.com/harutok/bookreview/configs"
)

const SessionCookie = "session"

const sessionTTL = 72 * time.Hour

// Protected gates a route behind a valid session cookie. Browsers get a
// redirect to the login page instead of an error.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		TokenLookup:  "cookie:" + SessionCookie,
		ErrorHandler: redirectToLogin,
	})
}

func redirectToLogin(c *fiber.Ctx, err error) error {
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// CurrentUserID extracts the caller's id from the session token that
// Protected stored in the context.
func CurrentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("no session token in request context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected session claims type")
	}
	raw, _ := claims["user_id"].(string)
	return uuid.Parse(raw)
}

// IssueSession signs a session token for the given account.
func IssueSession(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("JWT_SECRET")))
}

func SetSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
