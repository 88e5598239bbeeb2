package domain

import "time"

type Medication struct {
	ID        int64     `json:"id"`
	SeniorID  int64     `json:"senior_id"`
	Name      string    `json:"name"`
	Dose      string    `json:"dose"`
	Unit      string    `json:"unit"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MedicationCreate struct {
	Name  string `json:"name" validate:"required"`
	Dose  string `json:"dose" validate:"required"`
	Unit  string `json:"unit" validate:"required"`
	Notes string `json:"notes,omitempty"`
}

// Schedule describes when a medication is due.
// Hours are 0-23; DaysOfWeek are 0-6 starting on Monday, empty meaning daily.
type Schedule struct {
	ID           int64     `json:"id"`
	MedicationID int64     `json:"medication_id"`
	StartDate    *string   `json:"start_date,omitempty"`
	EndDate      *string   `json:"end_date,omitempty"`
	Hours        []int     `json:"hours"`
	DaysOfWeek   []int     `json:"days_of_week,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ScheduleCreate struct {
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Hours      []int   `json:"hours" validate:"required,min=1,dive,gte=0,lte=23"`
	DaysOfWeek []int   `json:"days_of_week,omitempty" validate:"omitempty,dive,gte=0,lte=6"`
}

// Intake records one scheduled dose and whether it was taken.
type Intake struct {
	ID          int64      `json:"id"`
	MedicationID int64     `json:"medication_id"`
	SeniorID    int64      `json:"senior_id"`
	ScheduledAt time.Time  `json:"scheduled_at"`
	TakenAt     *time.Time `json:"taken_at,omitempty"`
	Status      string     `json:"status"`
	ActorUserID *int64     `json:"actor_user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
