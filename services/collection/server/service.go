package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pastpresent-backend/services/collection"
	"pastpresent-backend/services/collection/scraper"

	"github.com/gorilla/mux"
)

// Service exposes the collection over http.
type Service struct {
	store  collection.Store
	runner *scraper.Runner
	// scrape runs started over http outlive their request
	runCtx context.Context
}

func NewService(runCtx context.Context, store collection.Store, runner *scraper.Runner) Service {
	return Service{
		store:  store,
		runner: runner,
		runCtx: runCtx,
	}
}

func (s Service) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", s.health).Methods(http.MethodGet)
	router.HandleFunc("/players", s.listPlayers).Methods(http.MethodGet)
	router.HandleFunc("/players/{slug}", s.getPlayer).Methods(http.MethodGet)
	router.HandleFunc("/cards/{slug:.+}/club", s.setCardClub).Methods(http.MethodPatch)
	router.HandleFunc("/scrape", s.triggerScrape).Methods(http.MethodPost)
	router.HandleFunc("/scrape/status", s.scrapeStatus).Methods(http.MethodGet)
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJson(w, status, ErrorResponse{Error: message})
}

func (s Service) health(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (s Service) listPlayers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	opts := collection.ListOptions{
		Search: query.Get("search"),
		Club:   collection.ClubFilterAll,
		Sort:   collection.RatingSortDesc,
	}

	switch query.Get("in_club") {
	case "", string(collection.ClubFilterAll):
	case string(collection.ClubFilterInClub):
		opts.Club = collection.ClubFilterInClub
	case string(collection.ClubFilterNotInClub):
		opts.Club = collection.ClubFilterNotInClub
	default:
		writeError(w, http.StatusBadRequest, "in_club must be one of: all, in_club, not_in_club")
		return
	}

	switch query.Get("sort") {
	case "", string(collection.RatingSortDesc):
	case string(collection.RatingSortAsc):
		opts.Sort = collection.RatingSortAsc
	default:
		writeError(w, http.StatusBadRequest, "sort must be one of: asc, desc")
		return
	}

	players, err := s.store.ListPlayers(ctx, opts)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list players", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list players")
		return
	}
	writeJson(w, http.StatusOK, toPlayerList(players))
}

func (s Service) getPlayer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	detail, err := s.store.GetPlayer(ctx, slug)
	if errors.Is(err, collection.ErrPlayerNotFound) {
		writeError(w, http.StatusNotFound, "player not found")
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to get player", "slug", slug, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to get player")
		return
	}
	writeJson(w, http.StatusOK, toPlayerDetail(detail))
}

func (s Service) setCardClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := mux.Vars(r)["slug"]

	var body SetClubStatusRequest
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil || body.InClub == nil {
		writeError(w, http.StatusBadRequest, "body must be json with an in_club boolean")
		return
	}

	found, err := s.store.SetCardClubStatus(ctx, slug, *body.InClub)
	if err != nil {
		slog.ErrorContext(ctx, "failed to set club status", "card_slug", slug, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to set club status")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "card not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s Service) triggerScrape(w http.ResponseWriter, r *http.Request) {
	started := s.runner.Trigger(s.runCtx)
	writeJson(w, http.StatusAccepted, TriggerScrapeResponse{
		Status:  "accepted",
		Started: started,
	})
}

func (s Service) scrapeStatus(w http.ResponseWriter, r *http.Request) {
	writeJson(w, http.StatusOK, s.runner.Status())
}
