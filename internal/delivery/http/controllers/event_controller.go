package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"sportevents/internal/delivery/http/helpers"
	"sportevents/internal/domain"
)

// CreateEventRequest is the request body for POST /api/sport-events.
type CreateEventRequest struct {
	Date              string  `json:"date"`
	TimeUTC           string  `json:"time_utc"`
	DurationInMinutes int     `json:"duration_in_minutes"`
	Description       *string `json:"description"`
	HomeScore         int     `json:"home_score"`
	AwayScore         int     `json:"away_score"`
	StatusID          int     `json:"status_id"`
	HomeTeamID        int     `json:"home_team_id"`
	AwayTeamID        int     `json:"away_team_id"`
	VenueID           int     `json:"venue_id"`
	StageID           int     `json:"stage_id"`
	CompetitionID     int     `json:"competition_id"`
	SportID           int     `json:"sport_id"`
}

// Validate implements helpers.Validator.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if _, err := domain.ParseDate(c.Date); err != nil {
		errs = append(errs, "date must be YYYY-MM-DD")
	}
	if _, err := domain.ParseClockTime(c.TimeUTC); err != nil {
		errs = append(errs, "time_utc must be HH:MM")
	}
	if c.DurationInMinutes <= 0 {
		errs = append(errs, "duration_in_minutes must be positive")
	}
	if c.HomeScore < 0 || c.AwayScore < 0 {
		errs = append(errs, "scores must not be negative")
	}
	required := []struct {
		name string
		id   int
	}{
		{"status_id", c.StatusID},
		{"home_team_id", c.HomeTeamID},
		{"away_team_id", c.AwayTeamID},
		{"venue_id", c.VenueID},
		{"stage_id", c.StageID},
		{"competition_id", c.CompetitionID},
		{"sport_id", c.SportID},
	}
	for _, f := range required {
		if f.id <= 0 {
			errs = append(errs, f.name+" is required")
		}
	}
	if c.HomeTeamID > 0 && c.HomeTeamID == c.AwayTeamID {
		errs = append(errs, "home_team_id and away_team_id must differ")
	}
	return errs
}

// toInput converts a validated request into the service input. Must only be
// called after Validate passed.
func (c CreateEventRequest) toInput() *domain.CreateEventInput {
	date, _ := domain.ParseDate(c.Date)
	timeUTC, _ := domain.ParseClockTime(c.TimeUTC)
	return &domain.CreateEventInput{
		Date:              date,
		TimeUTC:           timeUTC,
		DurationInMinutes: c.DurationInMinutes,
		Description:       c.Description,
		HomeScore:         c.HomeScore,
		AwayScore:         c.AwayScore,
		StatusID:          c.StatusID,
		HomeTeamID:        c.HomeTeamID,
		AwayTeamID:        c.AwayTeamID,
		VenueID:           c.VenueID,
		StageID:           c.StageID,
		CompetitionID:     c.CompetitionID,
		SportID:           c.SportID,
	}
}

// EventSuccessResponse is the success envelope for single-event endpoints.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success envelope for event list endpoints.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List all sport events
// @Description Returns every event as a fully-hydrated aggregate, ordered by date descending then time ascending.
// @Tags sport-events
// @Produce json
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/sport-events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list events")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEventByID godoc
// @Summary Get a sport event by id
// @Tags sport-events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/sport-events/id/{id} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "id must be an integer")
		return
	}
	event, err := c.Service.GetEventByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to get event")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// ListEventsByDate godoc
// @Summary List sport events on a calendar date
// @Description Returns the events on the given UTC date ordered by time ascending.
// @Tags sport-events
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/sport-events/date/{date} [get]
func (c *EventController) ListEventsByDate(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(r.PathValue("date"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid date format, use YYYY-MM-DD")
		return
	}
	events, err := c.Service.ListEventsByDate(r.Context(), date)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list events")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// ListEventsBySport godoc
// @Summary List sport events for a sport
// @Tags sport-events
// @Produce json
// @Param sportID path int true "Sport ID"
// @Success 200 {object} controllers.EventListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/sport-events/sport/{sportID} [get]
func (c *EventController) ListEventsBySport(w http.ResponseWriter, r *http.Request) {
	sportID, err := strconv.Atoi(r.PathValue("sportID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "sportID must be an integer")
		return
	}
	events, err := c.Service.ListEventsBySport(r.Context(), sportID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list events")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Schedule a new sport event
// @Description Validates the referenced entities, rejects venue and team double-bookings, and stores the event. Returns the created event fully hydrated.
// @Tags sport-events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Candidate event"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: venue_conflict or team_conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: invalid_reference"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/sport-events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.CreateEvent(r.Context(), req.toInput())
	if err != nil {
		var conflict *domain.ConflictError
		switch {
		case errors.As(err, &conflict):
			code := helpers.ErrCodeVenueConflict
			if conflict.Kind == domain.ConflictTeam {
				code = helpers.ErrCodeTeamConflict
			}
			helpers.WriteJSONError(w, http.StatusConflict, code, conflict.Message)
		case errors.Is(err, domain.ErrInvalidReference):
			helpers.WriteJSONError(w, http.StatusUnprocessableEntity, helpers.ErrCodeInvalidReference, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to create event")
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}
