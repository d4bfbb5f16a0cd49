package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"sportevents/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, referenceController *controllers.ReferenceController) *http.ServeMux {
	mux := http.NewServeMux()

	// Sport events
	mux.HandleFunc("GET /api/sport-events", eventController.ListEvents)
	mux.HandleFunc("GET /api/sport-events/id/{id}", eventController.GetEventByID)
	mux.HandleFunc("GET /api/sport-events/date/{date}", eventController.ListEventsByDate)
	mux.HandleFunc("GET /api/sport-events/sport/{sportID}", eventController.ListEventsBySport)
	mux.HandleFunc("POST /api/sport-events", eventController.CreateEvent)

	// Reference data
	mux.HandleFunc("GET /api/sports", referenceController.ListSports)
	mux.HandleFunc("GET /api/statuses", referenceController.ListStatuses)
	mux.HandleFunc("GET /api/stages", referenceController.ListStages)
	mux.HandleFunc("GET /api/teams", referenceController.ListTeams)
	mux.HandleFunc("GET /api/venues", referenceController.ListVenues)
	mux.HandleFunc("GET /api/competitions", referenceController.ListCompetitions)
	mux.HandleFunc("GET /api/seasons", referenceController.ListSeasons)
	mux.HandleFunc("GET /api/event-details/{eventID}", referenceController.ListEventDetails)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
