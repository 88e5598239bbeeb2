// Package auth holds the client-side credential store. Tokens are minted
// and validated by the backend; this side only persists them and inspects
// expiry so doomed requests can be skipped.
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials is the access/refresh token pair issued at login.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenStore is the secure-storage analog: a JSON file holding the
// current credential pair. A missing file means logged out and is not an
// error.
type TokenStore struct {
	mu   sync.Mutex
	path string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

func (s *TokenStore) Save(creds Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bytes, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("token store dir: %w", err)
		}
	}
	return os.WriteFile(s.path, bytes, 0o600)
}

func (s *TokenStore) Load() (Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *TokenStore) loadLocked() (Credentials, error) {
	bytes, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Credentials{}, nil
	}
	if err != nil {
		return Credentials{}, err
	}
	var creds Credentials
	if err := json.Unmarshal(bytes, &creds); err != nil {
		return Credentials{}, fmt.Errorf("corrupt token store: %w", err)
	}
	return creds, nil
}

// AccessToken implements contract.TokenSource. An empty token is the
// logged-out state, not a failure.
func (s *TokenStore) AccessToken() (string, error) {
	creds, err := s.Load()
	if err != nil {
		return "", err
	}
	return creds.AccessToken, nil
}

func (s *TokenStore) RefreshToken() (string, error) {
	creds, err := s.Load()
	if err != nil {
		return "", err
	}
	return creds.RefreshToken, nil
}

// Clear wipes the stored pair, returning to the logged-out state.
func (s *TokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// IsExpired inspects a JWT's exp claim without verifying the signature;
// verification belongs to the backend. Unparseable tokens count as
// expired so the caller falls through to a fresh login.
func IsExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(time.Now())
}
