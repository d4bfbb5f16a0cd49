package domain

import "context"

// StatusCompleted is the status name under which a winner is derived.
const StatusCompleted = "Completed"

// Event is the fully-hydrated sport event aggregate: the event row joined
// with its status, both teams (each with country and sport), venue (with
// address and country), stage, competition (with optional season), and sport.
// It is freshly constructed per request; nothing is lazily loaded.
type Event struct {
	ID                int         `json:"id"`
	Date              Date        `json:"date"`
	TimeUTC           ClockTime   `json:"time_utc"`
	DurationInMinutes int         `json:"duration_in_minutes"`
	Description       *string     `json:"description"`
	HomeScore         int         `json:"home_score"`
	AwayScore         int         `json:"away_score"`
	WinnerTeamID      *int        `json:"winner_team_id"`
	Status            Status      `json:"status"`
	HomeTeam          Team        `json:"home_team"`
	AwayTeam          Team        `json:"away_team"`
	Venue             Venue       `json:"venue"`
	Stage             Stage       `json:"stage"`
	Competition       Competition `json:"competition"`
	Sport             Sport       `json:"sport"`
}

// Interval returns the half-open span the event occupies.
func (e *Event) Interval() Interval {
	return NewInterval(e.Date, e.TimeUTC, e.DurationInMinutes)
}

// Winner derives the winning team id from status and scores. It is non-nil
// only for a completed event with unequal scores; ties and non-completed
// statuses have no winner. Derived at read time, never stored.
func Winner(statusName string, homeScore, awayScore, homeTeamID, awayTeamID int) *int {
	if statusName != StatusCompleted {
		return nil
	}
	if homeScore == awayScore {
		return nil
	}
	if homeScore > awayScore {
		return &homeTeamID
	}
	return &awayTeamID
}

// CreateEventInput is a candidate event submission: the scalar fields plus
// the seven foreign keys the event row references.
type CreateEventInput struct {
	Date              Date
	TimeUTC           ClockTime
	DurationInMinutes int
	Description       *string
	HomeScore         int
	AwayScore         int
	StatusID          int
	HomeTeamID        int
	AwayTeamID        int
	VenueID           int
	StageID           int
	CompetitionID     int
	SportID           int
}

// Interval returns the half-open span the candidate would occupy.
func (in *CreateEventInput) Interval() Interval {
	return NewInterval(in.Date, in.TimeUTC, in.DurationInMinutes)
}

// EventRepository defines storage access for events.
type EventRepository interface {
	// GetByID returns the hydrated event or ErrNotFound.
	GetByID(ctx context.Context, id int) (*Event, error)
	// List returns all events ordered by date descending, time ascending.
	List(ctx context.Context) ([]*Event, error)
	// ListByDate returns the events on the given day ordered by time ascending.
	ListByDate(ctx context.Context, date Date) ([]*Event, error)
	// ListBySportID returns the events for a sport ordered by date descending,
	// time ascending.
	ListBySportID(ctx context.Context, sportID int) ([]*Event, error)
	// BookingsByVenueID returns the temporal footprint of every event at the venue.
	BookingsByVenueID(ctx context.Context, venueID int) ([]Booking, error)
	// BookingsByTeamIDs returns the footprint of every event in which either
	// given team appears as home or away.
	BookingsByTeamIDs(ctx context.Context, homeTeamID, awayTeamID int) ([]Booking, error)
	// MissingReferences names the foreign keys on the input that do not
	// reference existing rows. Empty means all references resolve.
	MissingReferences(ctx context.Context, in *CreateEventInput) ([]string, error)
	// Insert stores the event row in a single transaction and returns its
	// assigned id.
	Insert(ctx context.Context, in *CreateEventInput) (int, error)
}

// EventService is the scheduling and retrieval engine consumed by the
// delivery layer.
type EventService interface {
	CreateEvent(ctx context.Context, in *CreateEventInput) (*Event, error)
	GetEventByID(ctx context.Context, id int) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	ListEventsByDate(ctx context.Context, date Date) ([]*Event, error)
	ListEventsBySport(ctx context.Context, sportID int) ([]*Event, error)
}
