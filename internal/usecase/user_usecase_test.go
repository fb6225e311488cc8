package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/finvault/finvault/internal/domain"
	"github.com/finvault/finvault/internal/usecase"
	"github.com/finvault/finvault/internal/usecase/mocks"
)

func TestUserUseCase_CreateUser(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(repo, mocks.NewMockIDGenerator(), nil)

	user, err := uc.CreateUser(context.Background(), usecase.CreateUserInput{
		Name:  "Alice",
		Email: "alice@test.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated ID")
	}
	if user.CreatedAt.IsZero() {
		t.Error("expected created timestamp")
	}

	exists, err := repo.Exists(context.Background(), user.ID)
	if err != nil || !exists {
		t.Errorf("expected user to exist, got exists=%v err=%v", exists, err)
	}
}

func TestUserUseCase_DuplicateEmail(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(repo, mocks.NewMockIDGenerator(), nil)

	input := usecase.CreateUserInput{Name: "Alice", Email: "alice@test.com"}
	if _, err := uc.CreateUser(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := uc.CreateUser(context.Background(), input)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserUseCase_GetUser(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	repo.Create(context.Background(), &domain.User{ID: "user-1", Name: "Alice"})

	uc := usecase.NewUserUseCase(repo, mocks.NewMockIDGenerator(), nil)

	user, err := uc.GetUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Alice" {
		t.Errorf("expected Alice, got %s", user.Name)
	}

	_, err = uc.GetUser(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
