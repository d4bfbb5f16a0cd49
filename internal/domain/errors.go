package domain

import "errors"

var (
	// ErrNotFound signals that a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput signals a request that is well-formed but semantically
	// invalid, e.g. an event where a team would play against itself.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidReference signals that one or more foreign keys on a creation
	// request do not reference existing rows.
	ErrInvalidReference = errors.New("one or more referenced entities do not exist")

	// ErrReloadFailed signals that an event was inserted but could not be read
	// back by id. This should never happen under correct operation.
	ErrReloadFailed = errors.New("created event missing on reload")
)

// ConflictKind discriminates which booking rule a candidate event violated.
type ConflictKind string

const (
	ConflictVenue ConflictKind = "venue"
	ConflictTeam  ConflictKind = "team"
)

// ConflictError reports a temporal overlap between a candidate event and an
// existing booking. Kind tells callers whether the venue or a team is
// double-booked so they can render a specific message.
type ConflictError struct {
	Kind    ConflictKind
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewVenueConflict returns the conflict raised when the venue already hosts an
// overlapping event.
func NewVenueConflict() *ConflictError {
	return &ConflictError{
		Kind:    ConflictVenue,
		Message: "venue is already booked for this time period",
	}
}

// NewTeamConflict returns the conflict raised when either team already plays
// in an overlapping event.
func NewTeamConflict() *ConflictError {
	return &ConflictError{
		Kind:    ConflictTeam,
		Message: "one or both teams are already playing at this time",
	}
}
