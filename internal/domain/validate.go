package domain

import "github.com/go-playground/validator/v10"

// NewValidator returns a validator that knows the "attrkey" tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("attrkey", func(fl validator.FieldLevel) bool {
		return AttrKey(fl.Field().String()).Valid()
	})
	return v
}
