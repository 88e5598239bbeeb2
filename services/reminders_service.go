package services

import (
	"context"
	"fmt"

	"carelink/api"
	"carelink/domain"
)

type RemindersService struct {
	api *api.Client
}

func NewRemindersService(client *api.Client) *RemindersService {
	return &RemindersService{api: client}
}

func (s *RemindersService) GetReminders(ctx context.Context, seniorID int64) ([]domain.Reminder, error) {
	var reminders []domain.Reminder
	path := fmt.Sprintf("/reminders/seniors/%d/reminders", seniorID)
	if err := s.api.Get(ctx, path, &reminders); err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

func (s *RemindersService) CreateReminder(ctx context.Context, seniorID int64, payload domain.ReminderCreate) (domain.Reminder, error) {
	var reminder domain.Reminder
	path := fmt.Sprintf("/reminders/seniors/%d/reminders", seniorID)
	if err := s.api.Post(ctx, path, payload, &reminder); err != nil {
		return domain.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}
	return reminder, nil
}

// MarkDone flips a reminder to DONE on behalf of the acting user.
func (s *RemindersService) MarkDone(ctx context.Context, reminderID int64) (domain.Reminder, error) {
	var reminder domain.Reminder
	path := fmt.Sprintf("/reminders/%d/done", reminderID)
	if err := s.api.Post(ctx, path, nil, &reminder); err != nil {
		return domain.Reminder{}, fmt.Errorf("mark done: %w", err)
	}
	return reminder, nil
}

func (s *RemindersService) DeleteReminder(ctx context.Context, reminderID int64) error {
	path := fmt.Sprintf("/reminders/%d", reminderID)
	if err := s.api.Delete(ctx, path); err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}
