package services

import (
	"context"
	"fmt"

	"carelink/api"
	"carelink/domain"
)

// ReportsService exposes per-senior care statistics and generated
// reports.
type ReportsService struct {
	api *api.Client
}

func NewReportsService(client *api.Client) *ReportsService {
	return &ReportsService{api: client}
}

func (s *ReportsService) GetSeniorStats(ctx context.Context, seniorID int64) (domain.SeniorStats, error) {
	var stats domain.SeniorStats
	path := fmt.Sprintf("/stats/seniors/%d/stats", seniorID)
	if err := s.api.Get(ctx, path, &stats); err != nil {
		return domain.SeniorStats{}, fmt.Errorf("senior stats: %w", err)
	}
	return stats, nil
}

// GetQuickStats returns the adherence snapshot over the last days.
func (s *ReportsService) GetQuickStats(ctx context.Context, seniorID int64, days int) (domain.QuickStats, error) {
	var stats domain.QuickStats
	path := fmt.Sprintf("/stats/seniors/%d/quick-stats?days=%d", seniorID, days)
	if err := s.api.Get(ctx, path, &stats); err != nil {
		return domain.QuickStats{}, fmt.Errorf("quick stats: %w", err)
	}
	return stats, nil
}

func (s *ReportsService) CreateReport(ctx context.Context, seniorID int64, payload domain.ReportCreate) (domain.Report, error) {
	var report domain.Report
	path := fmt.Sprintf("/stats/seniors/%d/reports", seniorID)
	if err := s.api.Post(ctx, path, payload, &report); err != nil {
		return domain.Report{}, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

func (s *ReportsService) GetReport(ctx context.Context, reportID int64) (domain.Report, error) {
	var report domain.Report
	path := fmt.Sprintf("/stats/reports/%d", reportID)
	if err := s.api.Get(ctx, path, &report); err != nil {
		return domain.Report{}, fmt.Errorf("get report: %w", err)
	}
	return report, nil
}
