package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foundly/lostfound-api/internal/core/ports"
)

// UserHandler handles profile endpoints for the authenticated caller.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// updateProfileRequest deliberately binds only the name field; any other
// field in the request body is silently dropped. Name itself is optional:
// a body without it is a no-op update.
type updateProfileRequest struct {
	Name string `json:"name"`
}

// Profile handles GET /api/users/profile.
//
// @Summary      Caller's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  messageResponse
// @Router       /api/users/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(map[string]any{"user": user}))
}

// MyItems handles GET /api/users/my-items.
//
// @Summary      Caller's postings, newest first
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  messageResponse
// @Router       /api/users/my-items [get]
func (h *UserHandler) MyItems(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	items, err := h.service.MyItems(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successList(len(items), map[string]any{"items": items}))
}

// UpdateProfile handles PATCH /api/users/profile — only name is updatable.
//
// @Summary      Update the caller's display name
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "new name"
// @Success      200   {object}  envelope
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/users/profile [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	// Without a name there is nothing to change; answer with the current
	// record as if a no-op update had been applied.
	if req.Name == "" {
		user, err := h.service.Profile(c.Request().Context(), identity.ID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, success(map[string]any{"user": user}))
	}

	user, err := h.service.UpdateName(c.Request().Context(), identity.ID, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(map[string]any{"user": user}))
}
