package domain

import "time"

// Senior is the care profile the rest of the app revolves around.
type Senior struct {
	ID                    int64     `json:"id"`
	FullName              string    `json:"full_name"`
	Birthdate             *string   `json:"birthdate"`
	Conditions            string    `json:"conditions,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type SeniorCreate struct {
	FullName              string  `json:"full_name" validate:"required"`
	Birthdate             *string `json:"birthdate,omitempty"`
	Conditions            string  `json:"conditions,omitempty"`
	EmergencyContactName  string  `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string  `json:"emergency_contact_phone,omitempty"`
}

// TeamMember is one row of a senior's care team.
type TeamMember struct {
	ID        int64     `json:"id"`
	SeniorID  int64     `json:"senior_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	UserRole  string    `json:"user_role"`
	AddedAt   time.Time `json:"added_at"`
}

type TeamMemberAdd struct {
	UserID         int64  `json:"user_id" validate:"required,gt=0"`
	MembershipRole string `json:"membership_role" validate:"required,oneof=SELF DOCTOR NURSE CAREGIVER PRIMARY_CAREGIVER FAMILY OTHER"`
	CanView        *bool  `json:"can_view,omitempty"`
	CanEdit        *bool  `json:"can_edit,omitempty"`
}
