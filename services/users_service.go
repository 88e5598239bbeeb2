package services

import (
	"context"
	"fmt"

	"carelink/api"
	"carelink/domain"
)

type UsersService struct {
	api *api.Client
}

func NewUsersService(client *api.Client) *UsersService {
	return &UsersService{api: client}
}

func (s *UsersService) GetUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := s.api.Get(ctx, "/users", &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UsersService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	var user domain.User
	if err := s.api.Get(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
