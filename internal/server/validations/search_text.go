package validations

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const searchTextValidatorTag string = "search_text"

// searchTextValidator accepts the empty string, which matches every app, and
// tabs. Any other control character is rejected.
func searchTextValidator(fl validator.FieldLevel) bool {
	input, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	if !utf8.ValidString(input) {
		return false
	}

	for _, char := range input {
		if char != '\t' && unicode.IsControl(char) {
			return false
		}
	}

	return true
}
