package postgres

import (
	"context"
	"database/sql"

	"sportevents/internal/domain"
)

type referenceRepository struct {
	DB *sql.DB
}

func NewReferenceRepository(db *sql.DB) domain.ReferenceRepository {
	return &referenceRepository{
		DB: db,
	}
}

func (r *referenceRepository) ListSports(ctx context.Context) ([]*domain.Sport, error) {
	query := `SELECT sport_id, name FROM sport ORDER BY sport_id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sports := make([]*domain.Sport, 0)
	for rows.Next() {
		s := &domain.Sport{}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		sports = append(sports, s)
	}
	return sports, rows.Err()
}

func (r *referenceRepository) ListStatuses(ctx context.Context) ([]*domain.Status, error) {
	query := `SELECT status_id, name FROM status ORDER BY status_id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	statuses := make([]*domain.Status, 0)
	for rows.Next() {
		s := &domain.Status{}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}

func (r *referenceRepository) ListStages(ctx context.Context) ([]*domain.Stage, error) {
	query := `SELECT stage_id, name, ordering FROM stage ORDER BY ordering`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stages := make([]*domain.Stage, 0)
	for rows.Next() {
		s := &domain.Stage{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Ordering); err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, rows.Err()
}

func (r *referenceRepository) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT
			t.team_id, t.name, t.official_name, t.slug, t.abbreviation,
			s.sport_id, s.name AS sport_name,
			c.country_id, c.name AS country_name, c.country_code
		FROM team t
		INNER JOIN sport s ON t.sport_id = s.sport_id
		INNER JOIN country c ON t.country_id = c.country_id
		ORDER BY t.team_id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	teams := make([]*domain.Team, 0)
	for rows.Next() {
		t := &domain.Team{}
		if err := rows.Scan(
			&t.ID, &t.Name, &t.OfficialName, &t.Slug, &t.Abbreviation,
			&t.Sport.ID, &t.Sport.Name,
			&t.Country.ID, &t.Country.Name, &t.Country.CountryCode,
		); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (r *referenceRepository) ListVenues(ctx context.Context) ([]*domain.Venue, error) {
	query := `
		SELECT
			v.venue_id, v.name, v.capacity,
			a.address_id, a.street_number, a.street_name, a.city,
			c.country_id, c.name AS country_name, c.country_code
		FROM venue v
		INNER JOIN address a ON v.address_id = a.address_id
		INNER JOIN country c ON a.country_id = c.country_id
		ORDER BY v.venue_id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		v := &domain.Venue{}
		if err := rows.Scan(
			&v.ID, &v.Name, &v.Capacity,
			&v.Address.ID, &v.Address.StreetNumber, &v.Address.StreetName, &v.Address.City,
			&v.Address.Country.ID, &v.Address.Country.Name, &v.Address.Country.CountryCode,
		); err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

func (r *referenceRepository) ListCompetitions(ctx context.Context) ([]*domain.Competition, error) {
	query := `
		SELECT
			c.competition_id, c.name, c.competition_slug,
			se.season_id, se.name AS season_name, se.start_date, se.end_date
		FROM competition c
		LEFT JOIN season se ON c.season_id = se.season_id
		ORDER BY c.competition_id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	competitions := make([]*domain.Competition, 0)
	for rows.Next() {
		c := &domain.Competition{}
		var seasonID sql.NullInt64
		var seasonName sql.NullString
		var seasonStart, seasonEnd sql.NullTime
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &seasonID, &seasonName, &seasonStart, &seasonEnd); err != nil {
			return nil, err
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
			c.Season = season
		}
		competitions = append(competitions, c)
	}
	return competitions, rows.Err()
}

func (r *referenceRepository) ListSeasons(ctx context.Context) ([]*domain.Season, error) {
	query := `SELECT season_id, name, start_date, end_date FROM season ORDER BY season_id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seasons := make([]*domain.Season, 0)
	for rows.Next() {
		s := &domain.Season{}
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate); err != nil {
			return nil, err
		}
		seasons = append(seasons, s)
	}
	return seasons, rows.Err()
}

func (r *referenceRepository) EventDetailsByEventID(ctx context.Context, eventID int) ([]*domain.EventDetail, error) {
	query := `
		SELECT
			ed.event_detail_id, ed.recorded_at_utc, ed.description,
			t.team_id, t.name AS team_name, t.official_name, t.slug, t.abbreviation,
			c.country_id, c.name AS country_name, c.country_code,
			s.sport_id, s.name AS sport_name,
			et.event_type_id, et.name AS event_type_name
		FROM event_detail ed
		INNER JOIN team t ON ed.team_id = t.team_id
		INNER JOIN country c ON t.country_id = c.country_id
		INNER JOIN sport s ON t.sport_id = s.sport_id
		INNER JOIN event_type et ON ed.event_type_id = et.event_type_id
		WHERE ed.event_id = $1
		ORDER BY ed.recorded_at_utc DESC`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]*domain.EventDetail, 0)
	for rows.Next() {
		d := &domain.EventDetail{}
		var descNull sql.NullString
		if err := rows.Scan(
			&d.ID, &d.RecordedAt, &descNull,
			&d.Team.ID, &d.Team.Name, &d.Team.OfficialName, &d.Team.Slug, &d.Team.Abbreviation,
			&d.Team.Country.ID, &d.Team.Country.Name, &d.Team.Country.CountryCode,
			&d.Team.Sport.ID, &d.Team.Sport.Name,
			&d.EventType.ID, &d.EventType.Name,
		); err != nil {
			return nil, err
		}
		if descNull.Valid {
			d.Description = &descNull.String
		}
		details = append(details, d)
	}
	return details, rows.Err()
}
