package domain

import "time"

type Appointment struct {
	ID           int64      `json:"id"`
	SeniorID     int64      `json:"senior_id"`
	DoctorUserID int64      `json:"doctor_user_id"`
	StartsAt     time.Time  `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at,omitempty"`
	Location     string     `json:"location,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type AppointmentCreate struct {
	StartsAt     time.Time `json:"starts_at" validate:"required"`
	Location     string    `json:"location,omitempty"`
	Reason       string    `json:"reason,omitempty"`
	DoctorUserID int64     `json:"doctor_user_id" validate:"required,gt=0"`
}

type AppointmentNote struct {
	ID              int64     `json:"id"`
	AppointmentID   int64     `json:"appointment_id"`
	Note            string    `json:"note"`
	CreatedByUserID int64     `json:"created_by_user_id"`
	CreatedByName   string    `json:"created_by_name,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
