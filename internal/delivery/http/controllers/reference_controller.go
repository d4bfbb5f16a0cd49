package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"sportevents/internal/delivery/http/helpers"
	"sportevents/internal/domain"
)

type ReferenceController struct {
	Logger  *slog.Logger
	Service domain.ReferenceService
}

func NewReferenceController(logger *slog.Logger, svc domain.ReferenceService) *ReferenceController {
	return &ReferenceController{
		Logger:  logger,
		Service: svc,
	}
}

// respondList writes the list or a 500 envelope when the fetch failed.
func (c *ReferenceController) respondList(w http.ResponseWriter, r *http.Request, data any, err error) {
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to list reference data")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, data)
}

// ListSports godoc
// @Summary List sports
// @Tags reference-data
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/sports [get]
func (c *ReferenceController) ListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := c.Service.ListSports(r.Context())
	c.respondList(w, r, sports, err)
}

// ListStatuses godoc
// @Summary List event statuses
// @Tags reference-data
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/statuses [get]
func (c *ReferenceController) ListStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := c.Service.ListStatuses(r.Context())
	c.respondList(w, r, statuses, err)
}

// ListStages godoc
// @Summary List competition stages
// @Tags reference-data
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/stages [get]
func (c *ReferenceController) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := c.Service.ListStages(r.Context())
	c.respondList(w, r, stages, err)
}

// ListTeams godoc
// @Summary List teams with country and sport
// @Tags reference-data
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/teams [get]
func (c *ReferenceController) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := c.Service.ListTeams(r.Context())
	c.respondList(w, r, teams, err)
}

// ListVenues godoc
// @Summary List venues with address and country
// @Tags reference-data
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/venues [get]
func (c *ReferenceController) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := c.Service.ListVenues(r.Context())
	c.respondList(w, r, venues, err)
}

// ListCompetitions godoc
// @Summary List competitions with their optional season
// @Tags reference-data
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/competitions [get]
func (c *ReferenceController) ListCompetitions(w http.ResponseWriter, r *http.Request) {
	competitions, err := c.Service.ListCompetitions(r.Context())
	c.respondList(w, r, competitions, err)
}

// ListSeasons godoc
// @Summary List seasons
// @Tags reference-data
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/seasons [get]
func (c *ReferenceController) ListSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := c.Service.ListSeasons(r.Context())
	c.respondList(w, r, seasons, err)
}

// ListEventDetails godoc
// @Summary List the details of one event
// @Description Returns the timestamped sub-events (goals, cards, ...) of an event, most recent first.
// @Tags reference-data
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/event-details/{eventID} [get]
func (c *ReferenceController) ListEventDetails(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(r.PathValue("eventID"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "eventID must be an integer")
		return
	}
	details, err := c.Service.ListEventDetails(r.Context(), eventID)
	c.respondList(w, r, details, err)
}
