package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the struct tag rules of a request body and flattens the
// failures into one readable message.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var fields []string
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s is required", fe.Field()))
		case "min":
			fields = append(fields, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "email":
			fields = append(fields, fmt.Sprintf("%s must be a valid email", fe.Field()))
		case "oneof":
			fields = append(fields, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			fields = append(fields, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return fmt.Errorf("%s", strings.Join(fields, ", "))
}
