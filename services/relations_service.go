package services

import (
	"context"
	"fmt"
	"net/url"

	"carelink/api"
	"carelink/domain"
)

// RelationsService manages the care-team graph around a senior.
type RelationsService struct {
	api *api.Client
}

func NewRelationsService(client *api.Client) *RelationsService {
	return &RelationsService{api: client}
}

func (s *RelationsService) GetTeam(ctx context.Context, seniorID int64) ([]domain.TeamMember, error) {
	var team []domain.TeamMember
	path := fmt.Sprintf("/seniors/%d/team", seniorID)
	if err := s.api.Get(ctx, path, &team); err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	return team, nil
}

func (s *RelationsService) AddTeamMember(ctx context.Context, seniorID int64, payload domain.TeamMemberAdd) (domain.TeamMember, error) {
	var member domain.TeamMember
	path := fmt.Sprintf("/seniors/%d/team", seniorID)
	if err := s.api.Post(ctx, path, payload, &member); err != nil {
		return domain.TeamMember{}, fmt.Errorf("add team member: %w", err)
	}
	return member, nil
}

func (s *RelationsService) RemoveTeamMember(ctx context.Context, seniorID, memberID int64) error {
	path := fmt.Sprintf("/seniors/%d/team/%d", seniorID, memberID)
	if err := s.api.Delete(ctx, path); err != nil {
		return fmt.Errorf("remove team member: %w", err)
	}
	return nil
}

// SearchUsers finds candidate team members by name or email.
func (s *RelationsService) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	var users []domain.User
	path := "/users/search?q=" + url.QueryEscape(query)
	if err := s.api.Get(ctx, path, &users); err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}
