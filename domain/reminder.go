package domain

import "time"

// Reminder statuses.
const (
	ReminderPending   = "PENDING"
	ReminderDone      = "DONE"
	ReminderCancelled = "CANCELLED"
)

type Reminder struct {
	ID          int64      `json:"id"`
	SeniorID    int64      `json:"senior_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	RepeatRule  string     `json:"repeat_rule,omitempty"`
	Status      string     `json:"status"`
	DoneAt      *time.Time `json:"done_at,omitempty"`
	ActorUserID *int64     `json:"actor_user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ReminderCreate struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
	RepeatRule  string    `json:"repeat_rule,omitempty"`
}
