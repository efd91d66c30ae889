package http

import (
	"github.com/go-playground/validator/v10"
)

// Validator plugs go-playground/validator into echo's Context.Validate.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	case "uuid":
		return "Must be a valid UUID"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "latitude":
		return "Must be a latitude between -90 and 90"
	case "longitude":
		return "Must be a longitude between -180 and 180"
	default:
		return "Invalid value"
	}
}
