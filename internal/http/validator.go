package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"refapi/internal/entity"
)

var validate *validator.Validate

// yearPattern accepts a four digit year with an optional disambiguation
// letter, e.g. "2020" or "2020a".
var yearPattern = regexp.MustCompile(`^\d{4}[a-z]?$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("year", validateYear)
	validate.RegisterValidation("source_type", validateSourceType)
}

func validateYear(fl validator.FieldLevel) bool {
	return yearPattern.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateSourceType(fl validator.FieldLevel) bool {
	return entity.SourceType(fl.Field().String()).Valid()
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ValidateStruct(s interface{}) []ValidationError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "year":
			message = fmt.Sprintf("%s must be a four digit year, optionally followed by a letter (e.g. 2020 or 2020a)", field)
		case "source_type":
			message = fmt.Sprintf("%s must be one of: book, chapter, journal, website, report, thesis", field)
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", field)
		case "min":
			message = fmt.Sprintf("%s must have at least %s entries", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: message,
		})
	}

	return errors
}
