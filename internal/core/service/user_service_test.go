package service

import (
	"context"
	"errors"
	"testing"

	"github.com/foundly/lostfound-api/internal/core/domain"
)

func TestUserService_Profile(t *testing.T) {
	users := newStubUserRepo(testReporter)
	svc := NewUserService(users, newStubItemRepo(), discardLogger)

	user, err := svc.Profile(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}
}

func TestUserService_Profile_UnknownUser(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubItemRepo(), discardLogger)

	if _, err := svc.Profile(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_MyItems_ScopedToCaller(t *testing.T) {
	items := newStubItemRepo()
	users := newStubUserRepo(testReporter)
	itemSvc := NewItemService(items, users, newStubIdemStore(), discardLogger)
	svc := NewUserService(users, items, discardLogger)

	mine := walletInput("user_1")
	theirs := walletInput("user_2")
	if _, err := itemSvc.Create(context.Background(), mine); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := itemSvc.Create(context.Background(), theirs); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.MyItems(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].ReportedBy != "user_1" {
		t.Errorf("item not scoped to caller: %+v", got[0])
	}
}

func TestUserService_UpdateName(t *testing.T) {
	users := newStubUserRepo(testReporter)
	svc := NewUserService(users, newStubItemRepo(), discardLogger)

	user, err := svc.UpdateName(context.Background(), "user_1", "Alicia")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Alicia" {
		t.Errorf("expected name Alicia, got %q", user.Name)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email must be untouched, got %q", user.Email)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("role must be untouched, got %q", user.Role)
	}
}
