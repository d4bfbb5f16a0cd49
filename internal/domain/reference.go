package domain

import (
	"context"
	"time"
)

// Catalog entities are immutable lookup data created by seed or admin
// processes; this service only reads and references them.

type Sport struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Status struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Stage struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Ordering int    `json:"ordering"`
}

type Country struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

type Team struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	OfficialName string  `json:"official_name"`
	Slug         string  `json:"slug"`
	Abbreviation string  `json:"abbreviation"`
	Country      Country `json:"country"`
	Sport        Sport   `json:"sport"`
}

type Address struct {
	ID           int     `json:"id"`
	StreetNumber string  `json:"street_number"`
	StreetName   string  `json:"street_name"`
	City         string  `json:"city"`
	Country      Country `json:"country"`
}

type Venue struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Address  Address `json:"address"`
}

type Season struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	StartDate Date   `json:"start_date"`
	EndDate   Date   `json:"end_date"`
}

// Competition may exist outside any season; Season is nil in that case,
// never a zero-valued placeholder.
type Competition struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Slug   string  `json:"slug"`
	Season *Season `json:"season"`
}

type EventType struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// EventDetail is a timestamped sub-event (goal, card, ...) belonging to one
// event, attributed to one team and classified by one event type.
type EventDetail struct {
	ID          int       `json:"id"`
	RecordedAt  time.Time `json:"recorded_at_utc"`
	Description *string   `json:"description"`
	Team        Team      `json:"team"`
	EventType   EventType `json:"event_type"`
}

// ReferenceRepository defines read access to the catalog tables and to event
// details.
type ReferenceRepository interface {
	ListSports(ctx context.Context) ([]*Sport, error)
	ListStatuses(ctx context.Context) ([]*Status, error)
	ListStages(ctx context.Context) ([]*Stage, error)
	ListTeams(ctx context.Context) ([]*Team, error)
	ListVenues(ctx context.Context) ([]*Venue, error)
	ListCompetitions(ctx context.Context) ([]*Competition, error)
	ListSeasons(ctx context.Context) ([]*Season, error)
	// EventDetailsByEventID returns the details of one event ordered by
	// recorded time descending.
	EventDetailsByEventID(ctx context.Context, eventID int) ([]*EventDetail, error)
}

// ReferenceService exposes catalog reads to the delivery layer.
type ReferenceService interface {
	ListSports(ctx context.Context) ([]*Sport, error)
	ListStatuses(ctx context.Context) ([]*Status, error)
	ListStages(ctx context.Context) ([]*Stage, error)
	ListTeams(ctx context.Context) ([]*Team, error)
	ListVenues(ctx context.Context) ([]*Venue, error)
	ListCompetitions(ctx context.Context) ([]*Competition, error)
	ListSeasons(ctx context.Context) ([]*Season, error)
	ListEventDetails(ctx context.Context, eventID int) ([]*EventDetail, error)
}
