package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sportevents/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// eventSelect is the canonical enriched-event query: one wide join producing
// the full aggregate per row, so hydration never needs a second round trip.
// Season is the only LEFT JOIN; every other relationship is required.
const eventSelect = `
	SELECT
		e.event_id, e.date, e.time_utc, e.duration_in_minutes, e.description,
		e.home_score, e.away_score,
		s.status_id, s.name AS status_name,
		ht.team_id AS home_team_id, ht.name AS home_team_name,
		ht.official_name AS home_team_official_name, ht.slug AS home_team_slug,
		ht.abbreviation AS home_team_abbreviation,
		hts.sport_id AS home_team_sport_id, hts.name AS home_team_sport_name,
		hc.country_id AS home_team_country_id, hc.name AS home_team_country_name,
		hc.country_code AS home_team_country_code,
		aw.team_id AS away_team_id, aw.name AS away_team_name,
		aw.official_name AS away_team_official_name, aw.slug AS away_team_slug,
		aw.abbreviation AS away_team_abbreviation,
		aws.sport_id AS away_team_sport_id, aws.name AS away_team_sport_name,
		ac.country_id AS away_team_country_id, ac.name AS away_team_country_name,
		ac.country_code AS away_team_country_code,
		v.venue_id, v.name AS venue_name, v.capacity AS venue_capacity,
		a.address_id, a.street_number, a.street_name, a.city,
		vc.country_id AS venue_country_id, vc.name AS venue_country_name,
		vc.country_code AS venue_country_code,
		st.stage_id, st.name AS stage_name, st.ordering AS stage_ordering,
		c.competition_id, c.name AS competition_name, c.competition_slug,
		se.season_id, se.name AS season_name,
		se.start_date AS season_start_date, se.end_date AS season_end_date,
		sp.sport_id, sp.name AS sport_name
	FROM event e
	INNER JOIN status s ON e.status_id = s.status_id
	INNER JOIN team ht ON e.home_team_id = ht.team_id
	INNER JOIN sport hts ON ht.sport_id = hts.sport_id
	INNER JOIN country hc ON ht.country_id = hc.country_id
	INNER JOIN team aw ON e.away_team_id = aw.team_id
	INNER JOIN sport aws ON aw.sport_id = aws.sport_id
	INNER JOIN country ac ON aw.country_id = ac.country_id
	INNER JOIN venue v ON e.venue_id = v.venue_id
	INNER JOIN address a ON v.address_id = a.address_id
	INNER JOIN country vc ON a.country_id = vc.country_id
	INNER JOIN stage st ON e.stage_id = st.stage_id
	INNER JOIN competition c ON e.competition_id = c.competition_id
	LEFT JOIN season se ON c.season_id = se.season_id
	INNER JOIN sport sp ON e.sport_id = sp.sport_id`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanEvent materializes one enriched-event row into the aggregate. Winner is
// derived here so every read path reports it consistently.
func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull sql.NullString
	var seasonID sql.NullInt64
	var seasonName sql.NullString
	var seasonStart, seasonEnd sql.NullTime

	err := row.Scan(
		&e.ID, &e.Date, &e.TimeUTC, &e.DurationInMinutes, &descNull,
		&e.HomeScore, &e.AwayScore,
		&e.Status.ID, &e.Status.Name,
		&e.HomeTeam.ID, &e.HomeTeam.Name,
		&e.HomeTeam.OfficialName, &e.HomeTeam.Slug,
		&e.HomeTeam.Abbreviation,
		&e.HomeTeam.Sport.ID, &e.HomeTeam.Sport.Name,
		&e.HomeTeam.Country.ID, &e.HomeTeam.Country.Name,
		&e.HomeTeam.Country.CountryCode,
		&e.AwayTeam.ID, &e.AwayTeam.Name,
		&e.AwayTeam.OfficialName, &e.AwayTeam.Slug,
		&e.AwayTeam.Abbreviation,
		&e.AwayTeam.Sport.ID, &e.AwayTeam.Sport.Name,
		&e.AwayTeam.Country.ID, &e.AwayTeam.Country.Name,
		&e.AwayTeam.Country.CountryCode,
		&e.Venue.ID, &e.Venue.Name, &e.Venue.Capacity,
		&e.Venue.Address.ID, &e.Venue.Address.StreetNumber,
		&e.Venue.Address.StreetName, &e.Venue.Address.City,
		&e.Venue.Address.Country.ID, &e.Venue.Address.Country.Name,
		&e.Venue.Address.Country.CountryCode,
		&e.Stage.ID, &e.Stage.Name, &e.Stage.Ordering,
		&e.Competition.ID, &e.Competition.Name, &e.Competition.Slug,
		&seasonID, &seasonName, &seasonStart, &seasonEnd,
		&e.Sport.ID, &e.Sport.Name,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if seasonID.Valid {
		season := &domain.Season{
			ID:   int(seasonID.Int64),
			Name: seasonName.String,
		}
		if seasonStart.Valid {
			t := seasonStart.Time
			season.StartDate = domain.NewDate(t.Year(), t.Month(), t.Day())
		}
		if seasonEnd.Valid {
			t := seasonEnd.Time
			season.EndDate = domain.NewDate(t.Year(), t.Month(), t.Day())
		}
		e.Competition.Season = season
	}
	e.WinnerTeamID = domain.Winner(e.Status.Name, e.HomeScore, e.AwayScore, e.HomeTeam.ID, e.AwayTeam.ID)
	return e, nil
}

func (r *eventRepository) listEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	query := eventSelect + `
	WHERE e.event_id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := eventSelect + `
	ORDER BY e.date DESC, e.time_utc ASC`
	return r.listEvents(ctx, query)
}

func (r *eventRepository) ListByDate(ctx context.Context, date domain.Date) ([]*domain.Event, error) {
	query := eventSelect + `
	WHERE e.date = $1
	ORDER BY e.time_utc ASC`
	return r.listEvents(ctx, query, date)
}

func (r *eventRepository) ListBySportID(ctx context.Context, sportID int) ([]*domain.Event, error) {
	query := eventSelect + `
	WHERE e.sport_id = $1
	ORDER BY e.date DESC, e.time_utc ASC`
	return r.listEvents(ctx, query, sportID)
}

func (r *eventRepository) listBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.EventID, &b.Date, &b.TimeUTC, &b.DurationInMinutes); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *eventRepository) BookingsByVenueID(ctx context.Context, venueID int) ([]domain.Booking, error) {
	query := `
		SELECT event_id, date, time_utc, duration_in_minutes
		FROM event
		WHERE venue_id = $1`
	return r.listBookings(ctx, query, venueID)
}

func (r *eventRepository) BookingsByTeamIDs(ctx context.Context, homeTeamID, awayTeamID int) ([]domain.Booking, error) {
	query := `
		SELECT event_id, date, time_utc, duration_in_minutes
		FROM event
		WHERE home_team_id IN ($1, $2) OR away_team_id IN ($1, $2)`
	return r.listBookings(ctx, query, homeTeamID, awayTeamID)
}

func (r *eventRepository) MissingReferences(ctx context.Context, in *domain.CreateEventInput) ([]string, error) {
	query := `
		SELECT
			EXISTS(SELECT 1 FROM status WHERE status_id = $1) AS status_exists,
			EXISTS(SELECT 1 FROM team WHERE team_id = $2) AS home_team_exists,
			EXISTS(SELECT 1 FROM team WHERE team_id = $3) AS away_team_exists,
			EXISTS(SELECT 1 FROM venue WHERE venue_id = $4) AS venue_exists,
			EXISTS(SELECT 1 FROM stage WHERE stage_id = $5) AS stage_exists,
			EXISTS(SELECT 1 FROM competition WHERE competition_id = $6) AS competition_exists,
			EXISTS(SELECT 1 FROM sport WHERE sport_id = $7) AS sport_exists`
	var status, homeTeam, awayTeam, venue, stage, competition, sport bool
	err := r.DB.QueryRowContext(ctx, query,
		in.StatusID, in.HomeTeamID, in.AwayTeamID, in.VenueID,
		in.StageID, in.CompetitionID, in.SportID,
	).Scan(&status, &homeTeam, &awayTeam, &venue, &stage, &competition, &sport)
	if err != nil {
		return nil, err
	}
	var missing []string
	if !status {
		missing = append(missing, "status")
	}
	if !homeTeam {
		missing = append(missing, "home team")
	}
	if !awayTeam {
		missing = append(missing, "away team")
	}
	if !venue {
		missing = append(missing, "venue")
	}
	if !stage {
		missing = append(missing, "stage")
	}
	if !competition {
		missing = append(missing, "competition")
	}
	if !sport {
		missing = append(missing, "sport")
	}
	return missing, nil
}

func (r *eventRepository) Insert(ctx context.Context, in *domain.CreateEventInput) (int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert event: %w", err)
	}
	query := `
		INSERT INTO event (
			date, time_utc, duration_in_minutes, description,
			home_score, away_score,
			status_id, home_team_id, away_team_id, venue_id,
			stage_id, competition_id, sport_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING event_id`
	var id int
	err = tx.QueryRowContext(ctx, query,
		in.Date, in.TimeUTC, in.DurationInMinutes, in.Description,
		in.HomeScore, in.AwayScore,
		in.StatusID, in.HomeTeamID, in.AwayTeamID, in.VenueID,
		in.StageID, in.CompetitionID, in.SportID,
	).Scan(&id)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("insert event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert event: %w", err)
	}
	return id, nil
}
