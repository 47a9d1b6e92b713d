package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/harutok/bookreview/database"
	"github.com/harutok/bookreview/forms"
	"github.com/harutok/bookreview/middleware"
	"github.com/harutok/bookreview/models"
)

func ShowRegister(c *fiber.Ctx) error {
	return c.Render("auth/register", fiber.Map{
		"Form":   &forms.RegisterForm{},
		"Errors": map[string]string{},
	}, "layouts/main")
}

func Register(c *fiber.Ctx) error {
	var form forms.RegisterForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	errs := form.Validate()
	if len(errs) == 0 {
		var count int64
		if err := database.DB.Model(&models.User{}).Where("email = ?", form.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if count > 0 {
			errs = map[string]string{"email": "An account with this email already exists."}
		}
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).Render("auth/register", fiber.Map{
			"Form":   &form,
			"Errors": errs,
		}, "layouts/main")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:     form.Name,
		Email:    form.Email,
		Password: string(hashed),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	return signIn(c, user.ID)
}

func ShowLogin(c *fiber.Ctx) error {
	return c.Render("auth/login", fiber.Map{
		"Form":   &forms.LoginForm{},
		"Errors": map[string]string{},
	}, "layouts/main")
}

func Login(c *fiber.Ctx) error {
	var form forms.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	if errs := form.Validate(); len(errs) > 0 {
		return failLogin(c, &form)
	}

	var user models.User
	err := database.DB.Where("email = ?", form.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return failLogin(c, &form)
		}
		return fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)) != nil {
		return failLogin(c, &form)
	}

	return signIn(c, user.ID)
}

func Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func signIn(c *fiber.Ctx, userID uuid.UUID) error {
	token, err := middleware.IssueSession(userID)
	if err != nil {
		return fmt.Errorf("issue session: %w", err)
	}
	middleware.SetSessionCookie(c, token)
	return c.Redirect("/", fiber.StatusSeeOther)
}

// failLogin re-renders the login form with a single generic message so a
// probe cannot tell a wrong password from an unknown email.
func failLogin(c *fiber.Ctx, form *forms.LoginForm) error {
	return c.Status(fiber.StatusUnprocessableEntity).Render("auth/login", fiber.Map{
		"Form":   form,
		"Errors": map[string]string{"form": "Invalid email or password."},
	}, "layouts/main")
}
