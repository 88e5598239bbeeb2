package services

import (
	"context"
	"fmt"

	"carelink/api"
	"carelink/domain"
)

type AppointmentsService struct {
	api *api.Client
}

func NewAppointmentsService(client *api.Client) *AppointmentsService {
	return &AppointmentsService{api: client}
}

func (s *AppointmentsService) GetAppointments(ctx context.Context, seniorID int64) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	path := fmt.Sprintf("/appointments/seniors/%d/appointments", seniorID)
	if err := s.api.Get(ctx, path, &appointments); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (s *AppointmentsService) CreateAppointment(ctx context.Context, seniorID int64, payload domain.AppointmentCreate) (domain.Appointment, error) {
	var appointment domain.Appointment
	path := fmt.Sprintf("/appointments/seniors/%d/appointments", seniorID)
	if err := s.api.Post(ctx, path, payload, &appointment); err != nil {
		return domain.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}
	return appointment, nil
}

func (s *AppointmentsService) AddNote(ctx context.Context, appointmentID int64, note string) (domain.AppointmentNote, error) {
	var created domain.AppointmentNote
	path := fmt.Sprintf("/appointments/appointments/%d/notes", appointmentID)
	if err := s.api.Post(ctx, path, map[string]string{"note": note}, &created); err != nil {
		return domain.AppointmentNote{}, fmt.Errorf("add note: %w", err)
	}
	return created, nil
}
