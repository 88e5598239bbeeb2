package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"carelink/api"
	"carelink/auth"
	"carelink/domain"
)

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AuthService wraps the auth endpoints and keeps the token store in sync
// with what the backend issues.
type AuthService struct {
	api      *api.Client
	store    *auth.TokenStore
	validate *validator.Validate
}

func NewAuthService(client *api.Client, store *auth.TokenStore) *AuthService {
	return &AuthService{
		api:      client,
		store:    store,
		validate: validator.New(),
	}
}

// Login exchanges credentials for a token pair and persists it.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	var tokens tokenResponse
	if err := s.api.Post(ctx, "/auth/login", req, &tokens); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return s.store.Save(auth.Credentials{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

func (s *AuthService) Register(ctx context.Context, req domain.RegisterRequest) (domain.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return domain.User{}, fmt.Errorf("register request: %w", err)
	}
	var user domain.User
	if err := s.api.Post(ctx, "/register", req, &user); err != nil {
		return domain.User{}, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// CurrentUser resolves the authenticated principal.
func (s *AuthService) CurrentUser(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := s.api.Get(ctx, "/me", &user); err != nil {
		return domain.User{}, fmt.Errorf("current user: %w", err)
	}
	return user, nil
}

// Logout revokes the refresh token server-side, then wipes the store.
// The wipe happens regardless of the revocation outcome.
func (s *AuthService) Logout(ctx context.Context) error {
	refreshToken, err := s.store.RefreshToken()
	if err == nil && refreshToken != "" {
		_ = s.api.Post(ctx, "/auth/logout", map[string]string{"refresh_token": refreshToken}, nil)
	}
	return s.store.Clear()
}
