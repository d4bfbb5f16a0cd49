package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"sportevents/config"
	httpdelivery "sportevents/internal/delivery/http"
	"sportevents/internal/delivery/http/controllers"
	"sportevents/internal/delivery/http/middleware"
	"sportevents/internal/repository/postgres"
	"sportevents/internal/services"
)

// @title Sport Events API
// @version 1.0
// @description Scheduling service for sport events with venue and team conflict detection.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	referenceRepo := postgres.NewReferenceRepository(db)

	eventService := services.NewEventService(eventRepo, cfg.ServiceTimeout)
	referenceService := services.NewReferenceService(referenceRepo, cfg.ServiceTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	referenceController := controllers.NewReferenceController(logger, referenceService)

	router := httpdelivery.NewRouter(eventController, referenceController)
	handler := middleware.Logging(logger, middleware.CORS(cfg.AllowedOrigins, router))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
			os.Exit(1)
		}
	}
	logger.Info("server stopped")
}
