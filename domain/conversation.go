package domain

import "time"

// Conversation is a care-team chat thread tied to one senior.
type Conversation struct {
	ID           int64     `json:"id"`
	SeniorID     int64     `json:"senior_id"`
	DoctorUserID *int64    `json:"doctor_user_id,omitempty"`
	Status       string    `json:"status"`
	LastMessage  *Message  `json:"last_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ConversationCreate is the payload for the create-on-demand path.
type ConversationCreate struct {
	SeniorID     int64  `json:"senior_id" validate:"required,gt=0"`
	DoctorUserID *int64 `json:"doctor_user_id,omitempty"`
}
