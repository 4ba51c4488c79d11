// Package handlers serves boards and comparisons as JSON.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/reallyasi9/nflstats/internal/league"
	"github.com/reallyasi9/nflstats/internal/nflapi"
	"github.com/reallyasi9/nflstats/internal/report"
	"github.com/reallyasi9/nflstats/internal/roster"
	"github.com/sirupsen/logrus"
)

// Handler answers API requests from a league.Source. Each request loads its own snapshot.
type Handler struct {
	src league.Source
	log *logrus.Entry
}

// NewHandler creates a handler over src.
func NewHandler(src league.Source) *Handler {
	return &Handler{src: src, log: logrus.WithField("component", "handlers")}
}

// NewRouter mounts every route. An empty origins list allows any origin.
func NewRouter(h *Handler, origins []string) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(h.logRequests)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/seasons/{season}", func(r chi.Router) {
			r.Get("/teams", h.GetTeamBoard)
			r.Get("/teams/compare", h.CompareTeams)
			r.Get("/players", h.GetPlayerBoard)
			r.Get("/players/compare", h.ComparePlayers)
		})
		r.Get("/positions/{code}", h.GetPosition)
	})
	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start),
			"request_id": chimiddleware.GetReqID(r.Context()),
		}).Info("request")
	})
}

// HealthCheck reports that the server is up.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func season(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "season"))
}

// GetTeamBoard returns the team board, optionally filtered by ?conference= and ?division=.
func (h *Handler) GetTeamBoard(w http.ResponseWriter, r *http.Request) {
	year, err := season(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid season")
		return
	}
	teams, err := h.teams(r, year)
	if err != nil {
		h.fail(w, err)
		return
	}
	conf := league.Conference(r.URL.Query().Get("conference"))
	div := league.Division(r.URL.Query().Get("division"))
	keep := func(t league.EnrichedTeam) bool {
		return league.InConference(conf)(t) && league.InDivision(div)(t)
	}
	respondJSON(w, http.StatusOK, report.NewTeamBoard(year, teams, keep))
}

// CompareTeams compares ?ids=A,B,... against the league.
func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	year, err := season(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid season")
		return
	}
	ids := report.SplitIDs(r.URL.Query().Get("ids"))
	if len(ids) < 2 {
		respondError(w, http.StatusBadRequest, "at least two ids are required")
		return
	}
	teams, err := h.teams(r, year)
	if err != nil {
		h.fail(w, err)
		return
	}
	c, err := report.CompareTeams(year, teams, ids)
	if err != nil {
		h.fail(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// GetPlayerBoard returns the player board, optionally limited to ?group= and filtered by ?q=.
func (h *Handler) GetPlayerBoard(w http.ResponseWriter, r *http.Request) {
	year, err := season(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid season")
		return
	}
	group, err := report.ParseGroupFilter(r.URL.Query().Get("group"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	players, err := h.src.Players(r.Context(), year)
	if err != nil {
		h.fail(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report.NewPlayerBoard(year, players, group, r.URL.Query().Get("q")))
}

// ComparePlayers compares ?ids=A,B,... against their group or every player.
func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	year, err := season(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid season")
		return
	}
	ids := report.SplitIDs(r.URL.Query().Get("ids"))
	if len(ids) < 2 {
		respondError(w, http.StatusBadRequest, "at least two ids are required")
		return
	}
	players, err := h.src.Players(r.Context(), year)
	if err != nil {
		h.fail(w, err)
		return
	}
	c, err := report.ComparePlayers(year, players, ids)
	if err != nil {
		h.fail(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

// Position is the resolver's answer for one code.
type Position struct {
	Code      string   `json:"code"`
	Group     string   `json:"group,omitempty"`
	Name      string   `json:"name,omitempty"`
	Primary   []string `json:"primary,omitempty"`
	Secondary []string `json:"secondary,omitempty"`
}

// GetPosition resolves a raw position code.
func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	g, ok := roster.ResolveGroup(code)
	if !ok {
		respondError(w, http.StatusNotFound, report.UnknownEntityError{Kind: "position", ID: code}.Error())
		return
	}
	p := Position{Code: code, Group: string(g), Name: g.Name()}
	for _, m := range g.Primary() {
		p.Primary = append(p.Primary, string(m.Key))
	}
	for _, m := range g.Secondary() {
		p.Secondary = append(p.Secondary, string(m.Key))
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *Handler) teams(r *http.Request, year int) ([]league.EnrichedTeam, error) {
	s, err := league.Load(r.Context(), h.src, year)
	if err != nil {
		return nil, err
	}
	return s.EnrichedTeams(), nil
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	var ue report.UnknownEntityError
	var nse league.NoSeasonError
	var se *nflapi.StatusError
	switch {
	case errors.As(err, &ue), errors.As(err, &nse):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &se) && se.Status == http.StatusNotFound:
		respondError(w, http.StatusNotFound, "season not found upstream")
	default:
		h.log.WithError(err).Error("request failed")
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
