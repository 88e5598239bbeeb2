package domain

import "time"

// Roles known to the backend.
const (
	RoleSenior    = "SENIOR"
	RoleCaregiver = "CAREGIVER"
	RoleFamily    = "FAMILY"
	RoleDoctor    = "DOCTOR"
	RoleAdmin     = "ADMIN"
)

// User is the authenticated principal as returned by the backend.
// SeniorID is set only for SENIOR accounts and links the user to
// their own care profile.
type User struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	SeniorID  *int64    `json:"senior_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the self-service signup payload.
type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=CAREGIVER FAMILY SENIOR"`
}

// LoginRequest carries credentials to the auth endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
