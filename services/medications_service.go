package services

import (
	"context"
	"fmt"

	"carelink/api"
	"carelink/domain"
)

type MedicationsService struct {
	api *api.Client
}

func NewMedicationsService(client *api.Client) *MedicationsService {
	return &MedicationsService{api: client}
}

func (s *MedicationsService) GetMedications(ctx context.Context, seniorID int64) ([]domain.Medication, error) {
	var medications []domain.Medication
	path := fmt.Sprintf("/meds/seniors/%d/medications", seniorID)
	if err := s.api.Get(ctx, path, &medications); err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	return medications, nil
}

func (s *MedicationsService) CreateMedication(ctx context.Context, seniorID int64, payload domain.MedicationCreate) (domain.Medication, error) {
	var medication domain.Medication
	path := fmt.Sprintf("/meds/seniors/%d/medications", seniorID)
	if err := s.api.Post(ctx, path, payload, &medication); err != nil {
		return domain.Medication{}, fmt.Errorf("create medication: %w", err)
	}
	return medication, nil
}

func (s *MedicationsService) CreateSchedule(ctx context.Context, medicationID int64, payload domain.ScheduleCreate) (domain.Schedule, error) {
	var schedule domain.Schedule
	path := fmt.Sprintf("/meds/medications/%d/schedule", medicationID)
	if err := s.api.Post(ctx, path, payload, &schedule); err != nil {
		return domain.Schedule{}, fmt.Errorf("create schedule: %w", err)
	}
	return schedule, nil
}

func (s *MedicationsService) GetIntakes(ctx context.Context, seniorID int64) ([]domain.Intake, error) {
	var intakes []domain.Intake
	path := fmt.Sprintf("/meds/seniors/%d/intakes", seniorID)
	if err := s.api.Get(ctx, path, &intakes); err != nil {
		return nil, fmt.Errorf("list intakes: %w", err)
	}
	return intakes, nil
}

// MarkTaken records that the senior took a dose now.
func (s *MedicationsService) MarkTaken(ctx context.Context, medicationID int64) (domain.Intake, error) {
	var intake domain.Intake
	path := fmt.Sprintf("/meds/medications/%d/take", medicationID)
	if err := s.api.Post(ctx, path, nil, &intake); err != nil {
		return domain.Intake{}, fmt.Errorf("mark taken: %w", err)
	}
	return intake, nil
}

func (s *MedicationsService) DeleteMedication(ctx context.Context, medicationID int64) error {
	path := fmt.Sprintf("/meds/medications/%d", medicationID)
	if err := s.api.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	return nil
}
