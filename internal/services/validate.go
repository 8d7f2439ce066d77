package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRecord checks the struct tags on a candidate record and folds the
// failures into one 400-style message.
func ValidateRecord(candidate any) error {
	err := validate.Struct(candidate)
	if err == nil {
		return nil
	}
	var failures validator.ValidationErrors
	if !errors.As(err, &failures) {
		return ErrBadRequest("Invalid payload")
	}
	parts := make([]string, 0, len(failures))
	for _, failure := range failures {
		switch failure.Tag() {
		case "required":
			parts = append(parts, failure.Field()+" is required")
		case "email":
			parts = append(parts, failure.Field()+" must be a valid email")
		case "min", "max":
			parts = append(parts, failure.Field()+" is out of range")
		default:
			parts = append(parts, failure.Field()+" is invalid")
		}
	}
	return ErrBadRequest(strings.Join(parts, "; "))
}
