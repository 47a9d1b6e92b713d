// Package forms holds the request types bound from HTML form submissions and
// turns validator failures into per-field messages for template re-rendering.
package forms

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldErrors converts a validator error into a field -> message map. The
// first failure per field wins. A nil error yields a nil map.
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid submission."
		return errs
	}

	for _, fe := range ve {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters.", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s.", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s.", fe.Param())
	case "number":
		return "Enter a whole number."
	case "email":
		return "Enter a valid email address."
	default:
		return "Invalid value."
	}
}
