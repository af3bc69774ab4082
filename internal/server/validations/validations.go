package validations

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
)

func NewValidator(logger *slog.Logger) *validator.Validate {
	validate := validator.New()
	if err := validate.RegisterValidation(searchTextValidatorTag, searchTextValidator); err != nil {
		logger.Error("Failed to register search text validator", "error", err)
		panic(err)
	}
	return validate
}
