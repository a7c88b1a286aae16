package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foundly/lostfound-api/internal/api/middleware"
	"github.com/foundly/lostfound-api/internal/core/domain"
	"github.com/foundly/lostfound-api/internal/core/ports"
)

type stubItemService struct {
	createFn  func(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error)
	getFn     func(ctx context.Context, id string) (*domain.Item, error)
	listFn    func(ctx context.Context, filter ports.ListItemsFilter) ([]*domain.Item, error)
	updateFn  func(ctx context.Context, id string, actor domain.Identity, input ports.UpdateItemInput) (*domain.Item, error)
	deleteFn  func(ctx context.Context, id string, actor domain.Identity) error
	resolveFn func(ctx context.Context, id string, actor domain.Identity) (*domain.Item, error)
	statsFn   func(ctx context.Context) (*ports.ItemStats, error)
}

func (s *stubItemService) Create(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	return s.createFn(ctx, input)
}

func (s *stubItemService) Get(ctx context.Context, id string) (*domain.Item, error) {
	return s.getFn(ctx, id)
}

func (s *stubItemService) List(ctx context.Context, filter ports.ListItemsFilter) ([]*domain.Item, error) {
	return s.listFn(ctx, filter)
}

func (s *stubItemService) Update(ctx context.Context, id string, actor domain.Identity, input ports.UpdateItemInput) (*domain.Item, error) {
	return s.updateFn(ctx, id, actor, input)
}

func (s *stubItemService) Delete(ctx context.Context, id string, actor domain.Identity) error {
	return s.deleteFn(ctx, id, actor)
}

func (s *stubItemService) Resolve(ctx context.Context, id string, actor domain.Identity) (*domain.Item, error) {
	return s.resolveFn(ctx, id, actor)
}

func (s *stubItemService) Stats(ctx context.Context) (*ports.ItemStats, error) {
	return s.statsFn(ctx)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func asIdentity(c echo.Context, id, role string) {
	c.Set(middleware.IdentityKey, domain.Identity{ID: id, Name: "Tester", Role: role})
}

func TestItemHandler_Create(t *testing.T) {
	var captured ports.CreateItemInput
	svc := &stubItemService{
		createFn: func(_ context.Context, input ports.CreateItemInput) (*domain.Item, error) {
			captured = input
			return &domain.Item{ID: "item_1", Name: input.Name, Type: input.Type, Status: domain.StatusActive}, nil
		},
	}
	h := NewItemHandler(svc)

	body := `{"name":"Black wallet","description":"Leather, two cards inside","category":"accessories","type":"lost","location":"Main library","date":"2026-08-12","contact":"alice@example.com","reportedBy":"someone-else"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/items", body)
	c.Request().Header.Set("Idempotency-Key", "key-123")
	asIdentity(c, "user_1", domain.RoleUser)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	if captured.ReportedBy != "user_1" {
		t.Fatalf("reporter must be the caller, got %q", captured.ReportedBy)
	}
	if captured.IdempotencyKey != "key-123" {
		t.Fatalf("idempotency key not forwarded, got %q", captured.IdempotencyKey)
	}
	if !captured.Date.Equal(time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", captured.Date)
	}

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Item domain.Item `json:"item"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" || resp.Data.Item.ID != "item_1" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestItemHandler_CreateMissingFields(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/items", `{"name":"Black wallet"}`)
	asIdentity(c, "user_1", domain.RoleUser)

	err := h.Create(c)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	fields := make(map[string]bool, len(ve.Fields))
	for _, fe := range ve.Fields {
		fields[fe.Field] = true
	}
	for _, want := range []string{"description", "category", "type", "location", "date", "contact"} {
		if !fields[want] {
			t.Fatalf("missing validation failure for %q in %+v", want, ve.Fields)
		}
	}
}

func TestItemHandler_CreateBadEnum(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	body := `{"name":"Wallet","description":"d","category":"vehicles","type":"lost","location":"l","date":"2026-08-12","contact":"c"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/items", body)
	asIdentity(c, "user_1", domain.RoleUser)

	err := h.Create(c)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "category" {
		t.Fatalf("expected category failure, got %+v", ve.Fields)
	}
}

func TestItemHandler_CreateBadDate(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	body := `{"name":"Wallet","description":"d","category":"other","type":"lost","location":"l","date":"12/08/2026","contact":"c"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/items", body)
	asIdentity(c, "user_1", domain.RoleUser)

	err := h.Create(c)
	ve, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "date" || ve.Fields[0].Message != "Valid date is required" {
		t.Fatalf("unexpected failure: %+v", ve.Fields)
	}
}

func TestItemHandler_CreateUnauthenticated(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/items", `{}`)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestItemHandler_ListForwardsFilters(t *testing.T) {
	var captured ports.ListItemsFilter
	svc := &stubItemService{
		listFn: func(_ context.Context, filter ports.ListItemsFilter) ([]*domain.Item, error) {
			captured = filter
			return []*domain.Item{{ID: "item_1"}, {ID: "item_2"}}, nil
		},
	}
	h := NewItemHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/items?type=lost&category=electronics&status=active&search=phone", "")

	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	want := ports.ListItemsFilter{Type: "lost", Category: "electronics", Status: "active", Search: "phone"}
	if captured != want {
		t.Fatalf("filter not forwarded: %+v", captured)
	}

	var resp struct {
		Status  string `json:"status"`
		Results int    `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Results != 2 {
		t.Fatalf("expected results 2, got %d", resp.Results)
	}
}

func TestItemHandler_GetNotFound(t *testing.T) {
	svc := &stubItemService{
		getFn: func(_ context.Context, _ string) (*domain.Item, error) {
			return nil, domain.ErrItemNotFound
		},
	}
	h := NewItemHandler(svc)

	c, _ := newTestContext(t, http.MethodGet, "/api/items/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != domain.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemHandler_UpdatePartial(t *testing.T) {
	var captured ports.UpdateItemInput
	svc := &stubItemService{
		updateFn: func(_ context.Context, id string, _ domain.Identity, input ports.UpdateItemInput) (*domain.Item, error) {
			captured = input
			return &domain.Item{ID: id, Name: *input.Name}, nil
		},
	}
	h := NewItemHandler(svc)

	c, rec := newTestContext(t, http.MethodPatch, "/api/items/item_1", `{"name":"Brown wallet","status":"resolved"}`)
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	asIdentity(c, "user_1", domain.RoleUser)

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.Name == nil || *captured.Name != "Brown wallet" {
		t.Fatalf("name not forwarded: %+v", captured)
	}
	if captured.Status == nil || *captured.Status != domain.StatusResolved {
		t.Fatalf("status not forwarded: %+v", captured)
	}
	if captured.Description != nil || captured.Category != nil || captured.Date != nil {
		t.Fatalf("absent fields must stay nil: %+v", captured)
	}
}

func TestItemHandler_UpdateForbiddenPassthrough(t *testing.T) {
	svc := &stubItemService{
		updateFn: func(_ context.Context, _ string, _ domain.Identity, _ ports.UpdateItemInput) (*domain.Item, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewItemHandler(svc)

	c, _ := newTestContext(t, http.MethodPatch, "/api/items/item_1", `{"name":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	asIdentity(c, "user_2", domain.RoleUser)

	if err := h.Update(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestItemHandler_DeleteNoContent(t *testing.T) {
	svc := &stubItemService{
		deleteFn: func(_ context.Context, id string, actor domain.Identity) error {
			if id != "item_1" || actor.ID != "user_1" {
				t.Fatalf("unexpected call: id=%s actor=%s", id, actor.ID)
			}
			return nil
		},
	}
	h := NewItemHandler(svc)

	c, rec := newTestContext(t, http.MethodDelete, "/api/items/item_1", "")
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	asIdentity(c, "user_1", domain.RoleUser)

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestItemHandler_Resolve(t *testing.T) {
	now := time.Now().UTC()
	svc := &stubItemService{
		resolveFn: func(_ context.Context, id string, _ domain.Identity) (*domain.Item, error) {
			return &domain.Item{ID: id, Status: domain.StatusResolved, ResolvedAt: &now}, nil
		},
	}
	h := NewItemHandler(svc)

	c, rec := newTestContext(t, http.MethodPatch, "/api/items/item_1/resolve", "")
	c.SetParamNames("id")
	c.SetParamValues("item_1")
	asIdentity(c, "user_1", domain.RoleUser)

	if err := h.Resolve(c); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"resolved"`) {
		t.Fatalf("resolved status missing from body: %s", rec.Body.String())
	}
}

func TestItemHandler_AdminStats(t *testing.T) {
	svc := &stubItemService{
		statsFn: func(_ context.Context) (*ports.ItemStats, error) {
			return &ports.ItemStats{TotalItems: 10, LostItems: 6, FoundItems: 4, ResolvedCases: 3}, nil
		},
	}
	h := NewItemHandler(svc)

	c, rec := newTestContext(t, http.MethodGet, "/api/items/stats/admin", "")
	asIdentity(c, "user_9", domain.RoleAdmin)

	if err := h.AdminStats(c); err != nil {
		t.Fatalf("stats: %v", err)
	}

	var resp struct {
		Status string          `json:"status"`
		Data   ports.ItemStats `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.TotalItems != 10 || resp.Data.ResolvedCases != 3 {
		t.Fatalf("unexpected stats: %+v", resp.Data)
	}
}
