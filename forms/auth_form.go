package forms

import "strings"

type RegisterForm struct {
	Name     string `form:"name" validate:"required,max=255"`
	Email    string `form:"email" validate:"required,email,max=255"`
	Password string `form:"password" validate:"required,min=6"`
}

func (f *RegisterForm) Validate() map[string]string {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	return FieldErrors(validate.Struct(f))
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func (f *LoginForm) Validate() map[string]string {
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	return FieldErrors(validate.Struct(f))
}
