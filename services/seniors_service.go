package services

import (
	"context"
	"fmt"

	"carelink/api"
	"carelink/domain"
)

type SeniorsService struct {
	api *api.Client
}

func NewSeniorsService(client *api.Client) *SeniorsService {
	return &SeniorsService{api: client}
}

func (s *SeniorsService) GetSeniors(ctx context.Context) ([]domain.Senior, error) {
	var seniors []domain.Senior
	if err := s.api.Get(ctx, "/seniors/", &seniors); err != nil {
		return nil, fmt.Errorf("list seniors: %w", err)
	}
	return seniors, nil
}

func (s *SeniorsService) GetSenior(ctx context.Context, id int64) (domain.Senior, error) {
	var senior domain.Senior
	if err := s.api.Get(ctx, fmt.Sprintf("/seniors/%d", id), &senior); err != nil {
		return domain.Senior{}, fmt.Errorf("get senior: %w", err)
	}
	return senior, nil
}

func (s *SeniorsService) CreateSenior(ctx context.Context, payload domain.SeniorCreate) (domain.Senior, error) {
	var senior domain.Senior
	if err := s.api.Post(ctx, "/seniors/", payload, &senior); err != nil {
		return domain.Senior{}, fmt.Errorf("create senior: %w", err)
	}
	return senior, nil
}
