package services

import (
	"context"
	"fmt"
	"time"

	"sportevents/internal/domain"
)

type referenceService struct {
	refs           domain.ReferenceRepository
	contextTimeout time.Duration
}

func NewReferenceService(refs domain.ReferenceRepository, timeout time.Duration) domain.ReferenceService {
	return &referenceService{
		refs:           refs,
		contextTimeout: timeout,
	}
}

func (s *referenceService) ListSports(ctx context.Context) ([]*domain.Sport, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	sports, err := s.refs.ListSports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sports: %w", err)
	}
	return sports, nil
}

func (s *referenceService) ListStatuses(ctx context.Context) ([]*domain.Status, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	statuses, err := s.refs.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return statuses, nil
}

func (s *referenceService) ListStages(ctx context.Context) ([]*domain.Stage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	stages, err := s.refs.ListStages(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return stages, nil
}

func (s *referenceService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	teams, err := s.refs.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *referenceService) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	venues, err := s.refs.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	return venues, nil
}

func (s *referenceService) ListCompetitions(ctx context.Context) ([]*domain.Competition, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	competitions, err := s.refs.ListCompetitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return competitions, nil
}

func (s *referenceService) ListSeasons(ctx context.Context) ([]*domain.Season, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	seasons, err := s.refs.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return seasons, nil
}

func (s *referenceService) ListEventDetails(ctx context.Context, eventID int) ([]*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	details, err := s.refs.EventDetailsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event details: %w", err)
	}
	return details, nil
}
