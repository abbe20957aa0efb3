package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is what services hand back to the route layer. The value
// itself is the JSON body; Code carries the HTTP status.
type ErrorResponse interface {
	error
	Code() int
}

var (
	InternalServerError     = NewSimple(http.StatusInternalServerError, "Internal server error")
	NotFoundError           = NewSimple(http.StatusNotFound, "Not found")
	MalformedBodyError      = NewSimple(http.StatusBadRequest, "Malformed request body")
	UserAlreadyExistsError  = NewSimple(http.StatusConflict, "Email is already registered")
	InvalidCredentialsError = NewSimple(http.StatusUnauthorized, "Invalid email or password")
	UnauthenticatedError    = NewSimple(http.StatusUnauthorized, "Unauthorized")
	InvalidAuthTokenError   = NewSimple(http.StatusForbidden, "Invalid token")
)

type simpleError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *simpleError) Code() int     { return e.Status }
func (e *simpleError) Error() string { return e.Message }

func NewSimple(status int, message string) ErrorResponse {
	return &simpleError{Status: status, Message: message}
}

func NewNotFoundError(what string) ErrorResponse {
	return NewSimple(http.StatusNotFound, what+" not found")
}

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, "Missing required parameter: "+name)
}

func NewInvalidParamTypeError(name, expected string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Parameter '%s' must be of type %s", name, expected))
}

type validationError struct {
	Status int      `json:"-"`
	Errors []string `json:"errors"`
}

func (e *validationError) Code() int     { return e.Status }
func (e *validationError) Error() string { return strings.Join(e.Errors, "; ") }

// FromValidationError translates a validator.Struct failure into a 400 whose
// body lists one message per violated rule, in field-declaration order.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = messageFor(fe)
	}
	return &validationError{Status: http.StatusBadRequest, Errors: msgs}
}

func messageFor(fe validator.FieldError) string {
	field := humanize(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "Invalid email format"
	case "calendardate":
		return "Invalid date format"
	case "max":
		return field + " is too long"
	case "min":
		if fe.Kind() == reflect.String {
			if fe.Param() == "1" {
				return field + " is required"
			}
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return field + " cannot be negative"
	case "gt":
		if fe.Kind() == reflect.Float64 || fe.Kind() == reflect.Float32 {
			return field + " must be greater than " + fe.Param()
		}
		return field + " must be a positive integer"
	default:
		return field + " is invalid"
	}
}

// humanize turns a json field name into the form used by the error texts:
// "user_id" -> "User ID", "exam_type" -> "Exam type".
func humanize(name string) string {
	words := strings.Split(name, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		if w == "id" {
			words[i] = "ID"
			continue
		}
		if i == 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
