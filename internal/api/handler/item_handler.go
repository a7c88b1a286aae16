package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foundly/lostfound-api/internal/core/domain"
	"github.com/foundly/lostfound-api/internal/core/ports"
)

// ItemHandler handles HTTP requests for lost/found postings.
type ItemHandler struct {
	service ports.ItemService
}

func NewItemHandler(service ports.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// List handles GET /api/items — public listing with filters.
//
// @Summary      List items with optional filters
// @Tags         items
// @Produce      json
// @Param        type      query     string  false  "lost or found"
// @Param        category  query     string  false  "item category"
// @Param        status    query     string  false  "active or resolved"
// @Param        search    query     string  false  "substring match on name, description, location"
// @Success      200       {object}  envelope
// @Failure      500       {object}  messageResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), ports.ListItemsFilter{
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successList(len(items), map[string]any{"items": items}))
}

// Get handles GET /api/items/:id.
//
// @Summary      Get a single item
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "item id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  messageResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(map[string]any{"item": item}))
}

// Create handles POST /api/items. The reporting user is always the caller;
// any client-supplied owner value is ignored.
//
// @Summary      Report a lost or found item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string             false  "Idempotency key to make submission retryable"
// @Param        body             body      createItemRequest  true   "Item details"
// @Success      201              {object}  envelope
// @Failure      400              {object}  messageResponse
// @Failure      401              {object}  messageResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, ok := parseItemDate(req.Date)
	if !ok {
		return &ValidationError{Fields: []FieldError{{Field: "date", Message: "Valid date is required"}}}
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateItemInput{
		Name:           req.Name,
		Description:    req.Description,
		Category:       domain.ItemCategory(req.Category),
		Type:           domain.ItemType(req.Type),
		Location:       req.Location,
		Date:           date,
		Contact:        req.Contact,
		ReportedBy:     identity.ID,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, success(map[string]any{"item": item}))
}

// Update handles PATCH /api/items/:id — owner or admin only.
//
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "item id"
// @Param        body  body      updateItemRequest  true  "fields to update"
// @Success      200   {object}  envelope
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/items/{id} [patch]
func (h *ItemHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := ports.UpdateItemInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Contact:     req.Contact,
	}
	if req.Category != nil {
		cat := domain.ItemCategory(*req.Category)
		input.Category = &cat
	}
	if req.Type != nil {
		typ := domain.ItemType(*req.Type)
		input.Type = &typ
	}
	if req.Status != nil {
		st := domain.ItemStatus(*req.Status)
		input.Status = &st
	}
	if req.Date != nil {
		date, ok := parseItemDate(*req.Date)
		if !ok {
			return &ValidationError{Fields: []FieldError{{Field: "date", Message: "Valid date is required"}}}
		}
		input.Date = &date
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("id"), identity, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(map[string]any{"item": item}))
}

// Delete handles DELETE /api/items/:id — owner or admin only.
//
// @Summary      Delete an item
// @Tags         items
// @Security     BearerAuth
// @Param        id  path  string  true  "item id"
// @Success      204
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), identity); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Resolve handles PATCH /api/items/:id/resolve — owner or admin only.
//
// @Summary      Mark an item resolved
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "item id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      409  {object}  messageResponse
// @Router       /api/items/{id}/resolve [patch]
func (h *ItemHandler) Resolve(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	item, err := h.service.Resolve(c.Request().Context(), c.Param("id"), identity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(map[string]any{"item": item}))
}

// AdminStats handles GET /api/items/stats/admin — admin only (enforced by
// the RBAC middleware on the route).
//
// @Summary      Aggregate item counts for the admin dashboard
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      403  {object}  messageResponse
// @Router       /api/items/stats/admin [get]
func (h *ItemHandler) AdminStats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, success(stats))
}
