package exceptions

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	StatusNotFound    string = "Not Found"
	StatusUnknown     string = "Internal Server Error"
	StatusUnavailable string = "Service Unavailable"
	StatusValidation  string = "Bad Request"
)

type ErrorResponse struct {
	Code    string
	Message string
}

func NewErrorResponse(err *ServiceError) ErrorResponse {
	switch err.Code {
	case CodeNotFound:
		return ErrorResponse{
			Code:    StatusNotFound,
			Message: err.Message,
		}
	case CodeValidation:
		return ErrorResponse{
			Code:    StatusValidation,
			Message: err.Message,
		}
	case CodeUnavailable:
		return ErrorResponse{
			Code:    StatusUnavailable,
			Message: err.Message,
		}
	case CodeUnknown:
		return ErrorResponse{
			Code:    StatusUnknown,
			Message: MessageUnknown,
		}
	default:
		return ErrorResponse{
			Code:    StatusUnknown,
			Message: err.Message,
		}
	}
}

type FieldError struct {
	Param   string
	Message string
	Value   interface{}
}

type ValidationErrorResponse struct {
	Code     string
	Message  string
	Location string
	Fields   []FieldError
}

const (
	ValidationResponseMessage       string = "Invalid request"
	ValidationResponseLocationQuery string = "query"
)

func toSnakeCase(camel string) string {
	if camel == strings.ToUpper(camel) {
		return strings.ToLower(camel)
	}

	var result strings.Builder
	for i, char := range camel {
		if unicode.IsUpper(char) {
			lowered := unicode.ToLower(char)
			if i > 0 {
				result.WriteRune('_')
				result.WriteRune(lowered)
				continue
			}

			result.WriteRune(lowered)
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}

const (
	fieldErrTagRequired string = "required"

	strFieldErrTagMin string = "min"
	strFieldErrTagMax string = "max"

	intFieldErrTagMin string = "min"
	intFieldErrTagGte string = "gte"

	FieldErrMessageInvalid  string = "must be valid"
	FieldErrMessageRequired string = "must be provided"

	StrFieldErrMessageMin string = "must be longer"
	StrFieldErrMessageMax string = "must be shorter"

	IntFieldErrMessageGte string = "must be greater"
)

func selectStrErrMessage(tag string) string {
	switch tag {
	case fieldErrTagRequired:
		return FieldErrMessageRequired
	case strFieldErrTagMin:
		return StrFieldErrMessageMin
	case strFieldErrTagMax:
		return StrFieldErrMessageMax
	default:
		return FieldErrMessageInvalid
	}
}

func selectIntErrMessage(tag string) string {
	switch tag {
	case fieldErrTagRequired:
		return FieldErrMessageRequired
	case intFieldErrTagGte, intFieldErrTagMin:
		return IntFieldErrMessageGte
	default:
		return FieldErrMessageInvalid
	}
}

func buildFieldErrorMessage(tag string, val interface{}) string {
	switch val.(type) {
	case string:
		return selectStrErrMessage(tag)
	case int, int16, int32, int64:
		return selectIntErrMessage(tag)
	default:
		return FieldErrMessageInvalid
	}
}

func ValidationErrorResponseFromErr(err *validator.ValidationErrors, location string) ValidationErrorResponse {
	fields := make([]FieldError, len(*err))

	for i, field := range *err {
		value := field.Value()
		fields[i] = FieldError{
			Value:   value,
			Param:   toSnakeCase(field.Field()),
			Message: buildFieldErrorMessage(field.Tag(), value),
		}
	}

	return ValidationErrorResponse{
		Code:     StatusValidation,
		Message:  ValidationResponseMessage,
		Fields:   fields,
		Location: location,
	}
}

func NewEmptyValidationErrorResponse(location string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:     StatusValidation,
		Message:  ValidationResponseMessage,
		Location: location,
	}
}

func NewRequestErrorStatus(code string) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
