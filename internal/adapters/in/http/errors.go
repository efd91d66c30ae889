package http

import (
	"errors"
	"net/http"

	"laundry/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Error is the JSON body of every failed response.
type Error struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func errorBody(code int, message string) Error {
	return Error{Code: code, Message: message}
}

// statusOf maps the core error taxonomy to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as JSON. Internal errors are logged and answered with a
// generic message.
func (s *Server) fail(c echo.Context, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		body := errorBody(http.StatusBadRequest, "validation failed")
		for _, fe := range validationErrors {
			body.Details = append(body.Details, FieldError{Field: fe.Field(), Message: validationMessage(fe)})
		}
		return c.JSON(http.StatusBadRequest, body)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return c.JSON(httpErr.Code, errorBody(httpErr.Code, http.StatusText(httpErr.Code)))
	}

	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		return c.JSON(code, errorBody(code, http.StatusText(code)))
	}
	return c.JSON(code, errorBody(code, err.Error()))
}
