package forms

// ReviewForm carries the fields of the review form. Rating is where the 1-5
// range is enforced; the storage layer does not check it.
type ReviewForm struct {
	Rating  int    `form:"rating" validate:"required,min=1,max=5"`
	Comment string `form:"comment"`
}

func (f *ReviewForm) Validate() map[string]string {
	return FieldErrors(validate.Struct(f))
}
