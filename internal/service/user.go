package service

import (
	"context"

	"flagquiz/internal/domain/entities"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user *entities.User) error
	Deactivate(ctx context.Context, userID int64) error
}

type UserService struct {
	repository UserRepository
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository}
}

// EnsureUser upserts the user row on every contact: the first one
// registers the user, later ones refresh the chat id and reactivate a
// row that was deactivated after a block.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) error {
	return s.repository.SaveUser(ctx, entities.NewUser(userID, chatID))
}

// Deactivate marks a user inactive, e.g. after the bot has been blocked.
// Inactive users are skipped by the reminder run.
func (s *UserService) Deactivate(ctx context.Context, userID int64) error {
	return s.repository.Deactivate(ctx, userID)
}
