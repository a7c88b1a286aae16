package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/foundly/lostfound-api/internal/api/handler"
	"github.com/foundly/lostfound-api/internal/core/domain"
)

// messageResponse is the bare error envelope: {"message":"…"}.
type messageResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// validationResponse renders field-level failures: {"errors":[{field,message}…]}.
type validationResponse struct {
	Errors []handler.FieldError `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders validation failures as a 400 with a per-field errors array.
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors and returns a generic 500 with the raw cause.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, validationResponse{Errors: ve.Fields})
			return
		}

		code, msg, cause := resolveError(err, log, c)
		_ = c.JSON(code, messageResponse{Message: msg, Error: cause})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (code int, msg, cause string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, "Item not found", ""
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", ""
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Not authorized to perform this action", ""
	case errors.Is(err, domain.ErrAlreadyResolved):
		return http.StatusConflict, "Item already resolved", ""
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "Email already registered", ""
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials", ""
	}

	// Unexpected error: log the real cause and surface it alongside the
	// generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server error", err.Error()
}
