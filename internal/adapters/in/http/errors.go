package http

import (
	"errors"
	"net/http"

	"wiggy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the core error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrReferenceIsInvalid),
		errors.Is(err, errs.ErrStateIsInvalid),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrCredentialsAreInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error. Client errors carry the error text; anything else is
// logged and answered with fallback only.
func (s *Server) fail(c echo.Context, err error, fallback string) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), fallback,
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return c.JSON(status, errorResponse{Message: fallback})
	}
	return c.JSON(status, errorResponse{Message: err.Error()})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, errorResponse{Message: message})
}
