package service

import (
	"context"
	"errors"
	"testing"

	"flagquiz/internal/domain/entities"
)

type fakeUserRepo struct {
	users map[int64]*entities.User
	saves int
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entities.User)}
}

func (r *fakeUserRepo) SaveUser(_ context.Context, user *entities.User) error {
	if r.err != nil {
		return r.err
	}
	r.saves++

	u := *user
	u.IsActive = true
	r.users[u.ID] = &u
	return nil
}

func (r *fakeUserRepo) Deactivate(_ context.Context, userID int64) error {
	if u, ok := r.users[userID]; ok {
		u.IsActive = false
	}
	return nil
}

func TestUserServiceEnsureUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	if err := svc.EnsureUser(context.Background(), 7, 42); err != nil {
		t.Fatalf("EnsureUser() failed: %v", err)
	}

	u, ok := repo.users[7]
	if !ok {
		t.Fatalf("EnsureUser() did not save the user")
	}
	if u.ChatID != 42 {
		t.Fatalf("ChatID = %d, want 42", u.ChatID)
	}
	if !u.IsActive {
		t.Fatalf("IsActive = false after registration")
	}
}

func TestUserServiceEnsureUserReactivates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	if err := svc.EnsureUser(ctx, 7, 42); err != nil {
		t.Fatalf("EnsureUser() failed: %v", err)
	}
	if err := svc.Deactivate(ctx, 7); err != nil {
		t.Fatalf("Deactivate() failed: %v", err)
	}
	if repo.users[7].IsActive {
		t.Fatalf("IsActive = true after Deactivate()")
	}

	// A user who blocked the bot and came back must reach the upsert, or
	// the row stays inactive and reminders never resume.
	if err := svc.EnsureUser(ctx, 7, 42); err != nil {
		t.Fatalf("EnsureUser() for a returning user failed: %v", err)
	}
	if repo.saves != 2 {
		t.Fatalf("SaveUser called %d times, want 2", repo.saves)
	}
	if !repo.users[7].IsActive {
		t.Fatalf("IsActive = false after the user returned")
	}
}

func TestUserServiceEnsureUserPropagatesErrors(t *testing.T) {
	wantErr := errors.New("connection refused")
	repo := newFakeUserRepo()
	repo.err = wantErr

	svc := NewUserService(repo)
	if err := svc.EnsureUser(context.Background(), 7, 42); !errors.Is(err, wantErr) {
		t.Fatalf("EnsureUser() error = %v, want %v", err, wantErr)
	}
}
