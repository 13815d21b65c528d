// Package api is the HTTP boundary: routing, identity, and the thin handlers
// that fetch rows, call the pure builders, and forward to narration.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MANASI777-hub/horizon/internal/cache"
	"github.com/MANASI777-hub/horizon/internal/journal"
	"github.com/MANASI777-hub/horizon/internal/narrative"
	"github.com/MANASI777-hub/horizon/internal/nearby"
)

// JournalStore is the persistence surface the handlers need. Satisfied by
// *store.Store.
type JournalStore interface {
	UpsertEntry(ctx context.Context, userID uuid.UUID, e journal.Entry) error
	ListEntries(ctx context.Context, userID uuid.UUID) ([]journal.Entry, error)
	ListEntriesSince(ctx context.Context, userID uuid.UUID, from string) ([]journal.Entry, error)
	ListEntriesBetween(ctx context.Context, userID uuid.UUID, start, end string) ([]journal.Entry, error)
	GetProfileName(ctx context.Context, userID uuid.UUID) (string, error)
}

// Publisher is the event-bus surface. Satisfied by *events.Client; nil means
// events are disabled.
type Publisher interface {
	Publish(subject string, data any) error
}

type Server struct {
	router   *chi.Mux
	port     int
	store    JournalStore
	cache    *cache.Cache
	events   Publisher
	narrator *narrative.Narrator
	nearby   *nearby.Client
	logger   *slog.Logger
	now      func() time.Time
}

// Deps carries the collaborators handlers use. Cache and events may be nil;
// the corresponding behavior is skipped.
type Deps struct {
	Store    JournalStore
	Cache    *cache.Cache
	Events   Publisher
	Narrator *narrative.Narrator
	Nearby   *nearby.Client
	Logger   *slog.Logger
	Now      func() time.Time
}

func NewServer(port int, apiToken string, deps Deps) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	s := &Server{
		router:   router,
		port:     port,
		store:    deps.Store,
		cache:    deps.Cache,
		events:   deps.Events,
		narrator: deps.Narrator,
		nearby:   deps.Nearby,
		logger:   deps.Logger,
		now:      deps.Now,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/horizon/status", s.status)

	router.Route("/api", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))
		r.Use(UserAuthMiddleware)

		r.Post("/journal", s.saveJournal)
		r.Get("/journals", s.listJournals)
		r.Get("/report", s.report)
		r.Get("/userdetails", s.userDetails)
		r.Post("/nearby", s.nearbyPlaces)

		r.Post("/ai/overview", s.aiOverview)
		r.Post("/ai/report-overview", s.aiReportOverview)
		r.Post("/ai/chat", s.aiChat)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"service": "horizon",
		"status":  "ok",
	})
}

// today returns the boundary's wall-clock date; builders never read the
// clock themselves.
func (s *Server) today() string {
	return s.now().UTC().Format("2006-01-02")
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
