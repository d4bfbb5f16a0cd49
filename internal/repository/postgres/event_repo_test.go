package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"sportevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventColumns = []string{
	"event_id", "date", "time_utc", "duration_in_minutes", "description",
	"home_score", "away_score",
	"status_id", "status_name",
	"home_team_id", "home_team_name", "home_team_official_name", "home_team_slug", "home_team_abbreviation",
	"home_team_sport_id", "home_team_sport_name",
	"home_team_country_id", "home_team_country_name", "home_team_country_code",
	"away_team_id", "away_team_name", "away_team_official_name", "away_team_slug", "away_team_abbreviation",
	"away_team_sport_id", "away_team_sport_name",
	"away_team_country_id", "away_team_country_name", "away_team_country_code",
	"venue_id", "venue_name", "venue_capacity",
	"address_id", "street_number", "street_name", "city",
	"venue_country_id", "venue_country_name", "venue_country_code",
	"stage_id", "stage_name", "stage_ordering",
	"competition_id", "competition_name", "competition_slug",
	"season_id", "season_name", "season_start_date", "season_end_date",
	"sport_id", "sport_name",
}

// addEventRow appends one enriched-event row with fixed catalog values so
// tests only vary the fields under test. desc and season may be nil.
func addEventRow(rows *sqlmock.Rows, id int, date time.Time, timeUTC string, duration int, desc any, homeScore, awayScore int, statusName string, withSeason bool) *sqlmock.Rows {
	var seasonID, seasonName, seasonStart, seasonEnd any
	if withSeason {
		seasonID = 80
		seasonName = "2024/25"
		seasonStart = time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
		seasonEnd = time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	}
	return rows.AddRow(
		id, date, timeUTC, duration, desc,
		homeScore, awayScore,
		1, statusName,
		10, "Lions", "Lions FC", "lions-fc", "LIO",
		70, "Football",
		5, "England", "ENG",
		20, "Tigers", "Tigers FC", "tigers-fc", "TIG",
		70, "Football",
		6, "Spain", "ESP",
		30, "North Stadium", 40000,
		40, "12", "Stadium Way", "Manchester",
		5, "England", "ENG",
		50, "Group Stage", 1,
		60, "Premier League", "premier-league",
		seasonID, seasonName, seasonStart, seasonEnd,
		70, "Football",
	)
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      int
		mock    func(mock sqlmock.Sqlmock)
		check   func(t *testing.T, got *domain.Event)
		wantErr error
	}{
		{
			name: "completed event with season",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventColumns)
				addEventRow(rows, 1, date, "10:00:00", 90, "derby", 3, 1, "Completed", true)
				mock.ExpectQuery(`SELECT(.|\n)+FROM event e(.|\n)+WHERE e\.event_id = \$1`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			check: func(t *testing.T, got *domain.Event) {
				assert.Equal(t, 1, got.ID)
				assert.Equal(t, "2024-06-01", got.Date.String())
				assert.Equal(t, domain.NewClockTime(10, 0), got.TimeUTC)
				assert.Equal(t, 90, got.DurationInMinutes)
				require.NotNil(t, got.Description)
				assert.Equal(t, "derby", *got.Description)
				require.NotNil(t, got.WinnerTeamID)
				assert.Equal(t, got.HomeTeam.ID, *got.WinnerTeamID)
				assert.Equal(t, "Lions", got.HomeTeam.Name)
				assert.Equal(t, "England", got.HomeTeam.Country.Name)
				assert.Equal(t, "Football", got.HomeTeam.Sport.Name)
				assert.Equal(t, "Tigers", got.AwayTeam.Name)
				assert.Equal(t, "North Stadium", got.Venue.Name)
				assert.Equal(t, "Manchester", got.Venue.Address.City)
				assert.Equal(t, "ENG", got.Venue.Address.Country.CountryCode)
				require.NotNil(t, got.Competition.Season)
				assert.Equal(t, "2024/25", got.Competition.Season.Name)
				assert.Equal(t, "2024-08-01", got.Competition.Season.StartDate.String())
			},
		},
		{
			name: "tie without season leaves winner and season nil",
			id:   2,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventColumns)
				addEventRow(rows, 2, date, "12:30:00", 60, nil, 2, 2, "Completed", false)
				mock.ExpectQuery(`WHERE e\.event_id = \$1`).
					WithArgs(2).
					WillReturnRows(rows)
			},
			check: func(t *testing.T, got *domain.Event) {
				assert.Nil(t, got.WinnerTeamID)
				assert.Nil(t, got.Description)
				assert.Nil(t, got.Competition.Season)
			},
		},
		{
			name: "scheduled event has no winner",
			id:   3,
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(eventColumns)
				addEventRow(rows, 3, date, "18:00:00", 120, nil, 0, 0, "Scheduled", true)
				mock.ExpectQuery(`WHERE e\.event_id = \$1`).
					WithArgs(3).
					WillReturnRows(rows)
			},
			check: func(t *testing.T, got *domain.Event) {
				assert.Nil(t, got.WinnerTeamID)
			},
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE e\.event_id = \$1`).
					WithArgs(99).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE e\.event_id = \$1`).
					WithArgs(1).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(eventColumns)
	addEventRow(rows, 3, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), "08:00:00", 60, nil, 0, 0, "Scheduled", false)
	addEventRow(rows, 1, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), "10:00:00", 60, nil, 0, 0, "Scheduled", false)
	addEventRow(rows, 2, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "09:00:00", 60, nil, 0, 0, "Scheduled", false)
	mock.ExpectQuery(`ORDER BY e\.date DESC, e\.time_utc ASC`).
		WillReturnRows(rows)

	repo := NewEventRepository(db)
	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Order is the store's: most recent day first, earliest time within a day first.
	assert.Equal(t, []int{3, 1, 2}, []int{got[0].ID, got[1].ID, got[2].ID})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListByDate(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := domain.NewDate(2024, time.June, 1)
	rows := sqlmock.NewRows(eventColumns)
	addEventRow(rows, 1, date.Time(), "09:00:00", 60, nil, 0, 0, "Scheduled", false)
	mock.ExpectQuery(`WHERE e\.date = \$1(.|\n)+ORDER BY e\.time_utc ASC`).
		WithArgs(date).
		WillReturnRows(rows)

	repo := NewEventRepository(db)
	got, err := repo.ListByDate(ctx, date)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Date.Equal(date))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_ListBySportID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantLen int
		wantErr bool
	}{
		{
			name: "success empty",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE e\.sport_id = \$1(.|\n)+ORDER BY e\.date DESC, e\.time_utc ASC`).
					WithArgs(70).
					WillReturnRows(sqlmock.NewRows(eventColumns))
			},
			wantLen: 0,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE e\.sport_id = \$1`).
					WithArgs(70).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.ListBySportID(ctx, 70)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_BookingsByVenueID(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"event_id", "date", "time_utc", "duration_in_minutes"}).
		AddRow(1, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "10:00:00", 90).
		AddRow(2, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), "14:00:00", 60)
	mock.ExpectQuery(`SELECT event_id, date, time_utc, duration_in_minutes(.|\n)+WHERE venue_id = \$1`).
		WithArgs(30).
		WillReturnRows(rows)

	repo := NewEventRepository(db)
	got, err := repo.BookingsByVenueID(ctx, 30)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].EventID)
	assert.Equal(t, domain.NewClockTime(10, 0), got[0].TimeUTC)
	assert.Equal(t, 90, got[0].DurationInMinutes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_BookingsByTeamIDs(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"event_id", "date", "time_utc", "duration_in_minutes"}).
		AddRow(4, time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC), "19:45:00", 105)
	mock.ExpectQuery(`WHERE home_team_id IN \(\$1, \$2\) OR away_team_id IN \(\$1, \$2\)`).
		WithArgs(10, 20).
		WillReturnRows(rows)

	repo := NewEventRepository(db)
	got, err := repo.BookingsByTeamIDs(ctx, 10, 20)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].EventID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_MissingReferences(t *testing.T) {
	ctx := context.Background()

	in := &domain.CreateEventInput{
		StatusID:      1,
		HomeTeamID:    10,
		AwayTeamID:    20,
		VenueID:       30,
		StageID:       50,
		CompetitionID: 60,
		SportID:       70,
	}
	existsColumns := []string{
		"status_exists", "home_team_exists", "away_team_exists",
		"venue_exists", "stage_exists", "competition_exists", "sport_exists",
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    []string
		wantErr bool
	}{
		{
			name: "all references exist",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT(.|\n)+EXISTS\(SELECT 1 FROM status`).
					WithArgs(1, 10, 20, 30, 50, 60, 70).
					WillReturnRows(sqlmock.NewRows(existsColumns).
						AddRow(true, true, true, true, true, true, true))
			},
			want: nil,
		},
		{
			name: "missing venue and away team",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`EXISTS\(SELECT 1 FROM status`).
					WithArgs(1, 10, 20, 30, 50, 60, 70).
					WillReturnRows(sqlmock.NewRows(existsColumns).
						AddRow(true, true, false, false, true, true, true))
			},
			want: []string{"away team", "venue"},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`EXISTS\(SELECT 1 FROM status`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.MissingReferences(ctx, in)
			if tt.wantErr {
				require.Error(t, err)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Insert(t *testing.T) {
	ctx := context.Background()

	in := &domain.CreateEventInput{
		Date:              domain.NewDate(2024, time.June, 1),
		TimeUTC:           domain.NewClockTime(10, 0),
		DurationInMinutes: 90,
		HomeScore:         0,
		AwayScore:         0,
		StatusID:          1,
		HomeTeamID:        10,
		AwayTeamID:        20,
		VenueID:           30,
		StageID:           50,
		CompetitionID:     60,
		SportID:           70,
	}

	t.Run("success commits and returns id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO event`).
			WithArgs(in.Date, in.TimeUTC, 90, nil, 0, 0, 1, 10, 20, 30, 50, 60, 70).
			WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(42))
		mock.ExpectCommit()

		repo := NewEventRepository(db)
		id, err := repo.Insert(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, 42, id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO event`).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		repo := NewEventRepository(db)
		id, err := repo.Insert(ctx, in)
		require.Error(t, err)
		require.True(t, errors.Is(err, sql.ErrConnDone))
		assert.Zero(t, id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

		repo := NewEventRepository(db)
		_, err = repo.Insert(ctx, in)
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
