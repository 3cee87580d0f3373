package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// FirstError collapses the validation result into a single error for callers
// that surface one reason at a time.
func FirstError(errs []*ErrorResponse) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", errs[0].FailedField, errs[0].Tag)
}
