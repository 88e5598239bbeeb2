package domain

import "time"

// Activity feeds the dashboard's recent-activity list.
type Activity struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Color       string    `json:"color,omitempty"`
}

// DashboardStats is the home-screen summary.
type DashboardStats struct {
	TotalMedications     int        `json:"total_medications"`
	UpcomingAppointments int        `json:"upcoming_appointments"`
	PendingReminders     int        `json:"pending_reminders"`
	RecentActivities     []Activity `json:"recent_activities"`
}

// SeniorStats aggregates one senior's care activity.
type SeniorStats struct {
	TotalMedications     int     `json:"total_medications"`
	TotalAppointments    int     `json:"total_appointments"`
	TotalReminders       int     `json:"total_reminders"`
	MedicationsTakenWeek int     `json:"medications_taken_this_week"`
	AppointmentsMonth    int     `json:"appointments_this_month"`
	LastActivityDate     *string `json:"last_activity_date,omitempty"`
}

// QuickStats is the short-window adherence snapshot.
type QuickStats struct {
	PeriodDays            int     `json:"period_days"`
	MedicationAdherence   float64 `json:"medication_adherence"`
	TotalDoses            int     `json:"total_doses"`
	DosesTaken            int     `json:"doses_taken"`
	UpcomingAppointments  int     `json:"upcoming_appointments"`
	PendingRemindersToday int     `json:"pending_reminders_today"`
}

// Report is a generated care report for one senior over a period.
type Report struct {
	ID                int64          `json:"id"`
	SeniorID          int64          `json:"senior_id"`
	ReportType        string         `json:"report_type"`
	StartDate         string         `json:"start_date"`
	EndDate           string         `json:"end_date"`
	Data              map[string]any `json:"data,omitempty"`
	GeneratedAt       time.Time      `json:"generated_at"`
	GeneratedByUserID int64          `json:"generated_by_user_id"`
}

type ReportCreate struct {
	ReportType string `json:"report_type" validate:"required,oneof=monthly weekly custom"`
	StartDate  string `json:"start_date" validate:"required"`
	EndDate    string `json:"end_date" validate:"required"`
}
