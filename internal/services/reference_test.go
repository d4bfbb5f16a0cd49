package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"sportevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReferenceRepo returns canned catalog data, or err from every method.
type fakeReferenceRepo struct {
	sports  []*domain.Sport
	details []*domain.EventDetail
	err     error
}

func (f *fakeReferenceRepo) ListSports(ctx context.Context) ([]*domain.Sport, error) {
	return f.sports, f.err
}

func (f *fakeReferenceRepo) ListStatuses(ctx context.Context) ([]*domain.Status, error) {
	return []*domain.Status{}, f.err
}

func (f *fakeReferenceRepo) ListStages(ctx context.Context) ([]*domain.Stage, error) {
	return []*domain.Stage{}, f.err
}

func (f *fakeReferenceRepo) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return []*domain.Team{}, f.err
}

func (f *fakeReferenceRepo) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	return []*domain.Venue{}, f.err
}

func (f *fakeReferenceRepo) ListCompetitions(ctx context.Context) ([]*domain.Competition, error) {
	return []*domain.Competition{}, f.err
}

func (f *fakeReferenceRepo) ListSeasons(ctx context.Context) ([]*domain.Season, error) {
	return []*domain.Season{}, f.err
}

func (f *fakeReferenceRepo) EventDetailsByEventID(ctx context.Context, eventID int) ([]*domain.EventDetail, error) {
	return f.details, f.err
}

func TestReferenceService_ListSports(t *testing.T) {
	ctx := context.Background()

	t.Run("passthrough", func(t *testing.T) {
		repo := &fakeReferenceRepo{sports: []*domain.Sport{{ID: 1, Name: "Football"}}}
		svc := NewReferenceService(repo, time.Second)

		got, err := svc.ListSports(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Football", got[0].Name)
	})

	t.Run("store failure wrapped", func(t *testing.T) {
		repo := &fakeReferenceRepo{err: errors.New("connection reset")}
		svc := NewReferenceService(repo, time.Second)

		_, err := svc.ListSports(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "list sports")
	})
}

func TestReferenceService_ListEventDetails(t *testing.T) {
	ctx := context.Background()

	repo := &fakeReferenceRepo{details: []*domain.EventDetail{
		{ID: 2, RecordedAt: time.Date(2024, 6, 1, 10, 42, 0, 0, time.UTC)},
		{ID: 1, RecordedAt: time.Date(2024, 6, 1, 10, 15, 0, 0, time.UTC)},
	}}
	svc := NewReferenceService(repo, time.Second)

	got, err := svc.ListEventDetails(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
}
