package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sportevents/internal/domain"
)

type eventService struct {
	events         domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(events domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		events:         events,
		contextTimeout: timeout,
	}
}

// CreateEvent runs the scheduling pipeline: referential validation, venue
// overlap check, team overlap check, transactional insert, reload. Venue
// conflicts are checked and reported before team conflicts; only the first
// conflict kind found is returned.
//
// The overlap checks and the insert are separate statements, so two
// concurrent submissions for the same slot can both pass the checks before
// either commits. This matches the observed behavior of the system this
// replaces; callers needing a hard guarantee must add a store-level
// constraint.
func (s *eventService) CreateEvent(ctx context.Context, in *domain.CreateEventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if in.HomeTeamID == in.AwayTeamID {
		return nil, fmt.Errorf("%w: home and away team must differ", domain.ErrInvalidInput)
	}

	missing, err := s.events.MissingReferences(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("validate references: %w", err)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidReference, strings.Join(missing, ", "))
	}

	candidate := in.Interval()

	venueBookings, err := s.events.BookingsByVenueID(ctx, in.VenueID)
	if err != nil {
		return nil, fmt.Errorf("check venue conflicts: %w", err)
	}
	if domain.OverlapsAny(candidate, venueBookings) {
		return nil, domain.NewVenueConflict()
	}

	teamBookings, err := s.events.BookingsByTeamIDs(ctx, in.HomeTeamID, in.AwayTeamID)
	if err != nil {
		return nil, fmt.Errorf("check team conflicts: %w", err)
	}
	if domain.OverlapsAny(candidate, teamBookings) {
		return nil, domain.NewTeamConflict()
	}

	id, err := s.events.Insert(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	created, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrReloadFailed, id)
		}
		return nil, fmt.Errorf("reload event %d: %w", id, err)
	}
	return created, nil
}

func (s *eventService) GetEventByID(ctx context.Context, id int) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListEventsByDate(ctx context.Context, date domain.Date) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.events.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list events by date: %w", err)
	}
	return events, nil
}

func (s *eventService) ListEventsBySport(ctx context.Context, sportID int) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.events.ListBySportID(ctx, sportID)
	if err != nil {
		return nil, fmt.Errorf("list events by sport: %w", err)
	}
	return events, nil
}
