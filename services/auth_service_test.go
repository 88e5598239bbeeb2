package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"carelink/api"
	"carelink/auth"
	"carelink/domain"
)

func authFixture(t *testing.T, handler http.Handler) (*AuthService, *auth.TokenStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	store := auth.NewTokenStore(filepath.Join(t.TempDir(), "tokens.json"))
	client := api.NewClient(testLogger(), server.URL, time.Second, store)
	return NewAuthService(client, store), store
}

func TestAuthService_Login_Persists_The_Token_Pair(t *testing.T) {
	req := require.New(t)
	var gotBody domain.LoginRequest
	service, store := authFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token":  "access-abc",
			"refresh_token": "refresh-def",
			"token_type":    "bearer",
		})
	}))

	err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "jean@example.org",
		Password: "s3cr3t-pass",
	})
	req.NoError(err)
	req.Equal("jean@example.org", gotBody.Email)

	creds, err := store.Load()
	req.NoError(err)
	req.Equal("access-abc", creds.AccessToken)
	req.Equal("refresh-def", creds.RefreshToken)
}

func TestAuthService_Login_Validates_Before_Calling_Out(t *testing.T) {
	req := require.New(t)
	var called bool
	service, _ := authFixture(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	tests := []struct {
		description string
		request     domain.LoginRequest
	}{
		{"Should reject a missing email", domain.LoginRequest{Password: "s3cr3t-pass"}},
		{"Should reject a malformed email", domain.LoginRequest{Email: "not-an-email", Password: "s3cr3t-pass"}},
		{"Should reject a missing password", domain.LoginRequest{Email: "jean@example.org"}},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Error(t, service.Login(context.Background(), tt.request))
		})
	}
	req.False(called)
}

func TestAuthService_Register_Validates_Role(t *testing.T) {
	req := require.New(t)
	service, _ := authFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		_ = json.NewEncoder(w).Encode(domain.User{ID: 7, Email: "jean@example.org", Role: domain.RoleCaregiver})
	}))

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		FullName: "Jean Dupont",
		Email:    "jean@example.org",
		Password: "s3cr3t-pass",
		Role:     "INTRUDER",
	})
	req.Error(err)

	user, err := service.Register(context.Background(), domain.RegisterRequest{
		FullName: "Jean Dupont",
		Email:    "jean@example.org",
		Password: "s3cr3t-pass",
		Role:     domain.RoleCaregiver,
	})
	req.NoError(err)
	req.Equal(int64(7), user.ID)
}

func TestAuthService_CurrentUser(t *testing.T) {
	req := require.New(t)
	seniorID := int64(3)
	service, store := authFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(domain.User{
			ID:       7,
			Email:    "mamie@example.org",
			Role:     domain.RoleSenior,
			SeniorID: &seniorID,
		})
	}))
	require.NoError(t, store.Save(auth.Credentials{AccessToken: "access", RefreshToken: "refresh"}))

	user, err := service.CurrentUser(context.Background())
	req.NoError(err)
	req.Equal(domain.RoleSenior, user.Role)
	req.NotNil(user.SeniorID)
	req.Equal(seniorID, *user.SeniorID)
}

func TestAuthService_Logout_Always_Clears_The_Store(t *testing.T) {
	req := require.New(t)
	service, store := authFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Revocation endpoint down; the local wipe must still happen.
		w.WriteHeader(http.StatusInternalServerError)
	}))
	require.NoError(t, store.Save(auth.Credentials{AccessToken: "access", RefreshToken: "refresh"}))

	req.NoError(service.Logout(context.Background()))

	creds, err := store.Load()
	req.NoError(err)
	req.Equal(auth.Credentials{}, creds)
}
