package services

import (
	"context"
	"fmt"

	"carelink/api"
	"carelink/domain"
)

// StatsService serves the dashboard summary numbers.
type StatsService struct {
	api *api.Client
}

func NewStatsService(client *api.Client) *StatsService {
	return &StatsService{api: client}
}

// GetDashboard returns the home-screen summary, scoped to one senior
// when an id is given.
func (s *StatsService) GetDashboard(ctx context.Context, seniorID *int64) (domain.DashboardStats, error) {
	path := "/stats/dashboard"
	if seniorID != nil {
		path = fmt.Sprintf("/stats/dashboard?senior_id=%d", *seniorID)
	}
	var stats domain.DashboardStats
	if err := s.api.Get(ctx, path, &stats); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}
