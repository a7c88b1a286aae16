package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/foundly/lostfound-api/internal/api/handler"
	"github.com/foundly/lostfound-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"item not found", domain.ErrItemNotFound, http.StatusNotFound, "Item not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Not authorized to perform this action"},
		{"already resolved", domain.ErrAlreadyResolved, http.StatusConflict, "Item already resolved"},
		{"duplicate email", domain.ErrUserExists, http.StatusConflict, "Email already registered"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := runErrorHandler(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}

			var resp struct {
				Message string `json:"message"`
				Error   string `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, resp.Message)
			}
			if resp.Error != "" {
				t.Fatalf("domain errors must not leak a raw cause, got %q", resp.Error)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	rec := runErrorHandler(t, errors.Join(errors.New("loading item"), domain.ErrItemNotFound))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped domain error, got %d", rec.Code)
	}
}

func TestErrorHandler_ValidationError(t *testing.T) {
	rec := runErrorHandler(t, &handler.ValidationError{Fields: []handler.FieldError{
		{Field: "email", Message: "Valid email is required"},
		{Field: "password", Message: "Password must be at least 6 characters"},
	}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Errors []handler.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Errors) != 2 || resp.Errors[0].Field != "email" {
		t.Fatalf("unexpected errors payload: %s", rec.Body.String())
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec := runErrorHandler(t, echo.NewHTTPError(http.StatusUnauthorized, "No token provided"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "No token provided" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestErrorHandler_UnknownError(t *testing.T) {
	rec := runErrorHandler(t, errors.New("mongo: socket closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Server error" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Error != "mongo: socket closed" {
		t.Fatalf("expected raw cause, got %q", resp.Error)
	}
}

func TestErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = c.NoContent(http.StatusNoContent)

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("committed response must not be rewritten, got %d", rec.Code)
	}
}
