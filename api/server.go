package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rainbet-service/betting"
	"rainbet-service/collector"
	"rainbet-service/forecast"
	"rainbet-service/models"
)

// sessionCookieName carries the visitor's session ID; each session owns an
// independent vote ledger.
const sessionCookieName = "rain_bet_session"

// maxResultSpanDays caps how many past days one results request may fan out to
const maxResultSpanDays = 14

type contextKey string

const sessionIDKey contextKey = "sessionID"

// Server serves the betting page and the JSON API
type Server struct {
	sessions   *SessionStore
	forecaster *forecast.Forecaster
	results    *collector.ResultCollector
	server     *http.Server
	tmpl       *template.Template
}

// NewServer creates the HTTP server and wires up all routes
func NewServer(sessions *SessionStore, forecaster *forecast.Forecaster, port int) *Server {
	s := &Server{
		sessions:   sessions,
		forecaster: forecaster,
		results:    collector.NewResultCollector(forecaster),
		tmpl:       template.Must(template.New("index").Parse(indexHTML)),
	}

	r := chi.NewRouter()
	r.Use(s.sessionMiddleware)

	// The interactive page and its vote form
	r.Get("/", s.handleIndex)
	r.Post("/bets", s.handleBetForm)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Get("/forecast", s.handleGetForecast)
		r.Get("/odds/{date}", s.handleGetOdds)
		r.Post("/bets", s.handleRecordBet)
		r.Get("/results", s.handleRecentResults)
		r.Get("/results/yesterday", s.handleYesterdayResult)
		r.Get("/results/{date}", s.handleGetResult)
		r.Get("/health", s.handleHealthCheck)
	})

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Router returns the HTTP handler (used by tests with httptest)
func (s *Server) Router() http.Handler {
	return s.server.Handler
}

// Start begins serving and blocks until the server stops
func (s *Server) Start() error {
	fmt.Printf("Starting rain betting server on %s\n", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// sessionMiddleware ensures every request carries a session ID, minting a
// cookie on first contact
func (s *Server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
			id = c.Value
		} else {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ledgerFor returns the vote ledger owned by the request's session
func (s *Server) ledgerFor(r *http.Request) *betting.Ledger {
	id, _ := r.Context().Value(sessionIDKey).(string)
	return s.sessions.Ledger(id)
}

// dayView combines a day's forecast with the session's current odds for it
type dayView struct {
	Forecast models.DayForecast
	Odds     models.Odds
}

// indexView is the data behind the betting page
type indexView struct {
	Yesterday models.HistoricalResult
	Days      []dayView
	Notice    string
}

// handleIndex renders the full betting page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ledger := s.ledgerFor(r)

	week := s.forecaster.WeeklyForecast(r.Context())
	days := make([]dayView, 0, len(week))
	for _, day := range week {
		days = append(days, dayView{
			Forecast: day,
			Odds:     ledger.Odds(day.Date),
		})
	}

	view := indexView{
		Yesterday: s.forecaster.YesterdayResult(),
		Days:      days,
		Notice:    legalNotice,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, view); err != nil {
		log.Printf("Error rendering index page: %v", err)
	}
}

// handleBetForm records a vote submitted by the page's buttons and triggers
// a full re-render by redirecting back to the page
func (s *Server) handleBetForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Malformed form", http.StatusBadRequest)
		return
	}

	date := r.FormValue("date")
	category := r.FormValue("category")
	if err := s.recordBet(r, date, category); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// recordBet validates and records one vote against the caller's session
func (s *Server) recordBet(r *http.Request, date, category string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q", date)
	}
	if err := s.ledgerFor(r).RecordBet(date, betting.Category(category)); err != nil {
		if errors.Is(err, betting.ErrInvalidCategory) {
			return fmt.Errorf("invalid bet category %q", category)
		}
		return err
	}
	return nil
}

// handleGetForecast returns the 7-day forecast list
func (s *Server) handleGetForecast(w http.ResponseWriter, r *http.Request) {
	week := s.forecaster.WeeklyForecast(r.Context())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"forecasts": week,
		"count":     len(week),
		"timestamp": time.Now(),
	})
}

// handleGetOdds returns the session's current odds for one day
func (s *Server) handleGetOdds(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Invalid date: %s", date),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":      date,
		"odds":      s.ledgerFor(r).Odds(date),
		"timestamp": time.Now(),
	})
}

// betRequest is the JSON body accepted by POST /api/bets
type betRequest struct {
	Date     string `json:"date"`
	Category string `json:"category"`
}

// handleRecordBet records a vote submitted through the JSON API and returns
// the updated odds
func (s *Server) handleRecordBet(w http.ResponseWriter, r *http.Request) {
	var req betRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Malformed request body",
		})
		return
	}

	if err := s.recordBet(r, req.Date, req.Category); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"date":      req.Date,
		"odds":      s.ledgerFor(r).Odds(req.Date),
		"timestamp": time.Now(),
	})
}

// handleRecentResults returns observed results for the last N days
func (s *Server) handleRecentResults(w http.ResponseWriter, r *http.Request) {
	days := 7
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if d, err := strconv.Atoi(daysStr); err == nil && d > 0 {
			days = d
			if days > maxResultSpanDays {
				days = maxResultSpanDays
			}
		}
	}

	dates := s.forecaster.RecentPastDates(days)
	results := s.results.Collect(r.Context(), dates)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"results":   results,
		"count":     len(results),
		"timestamp": time.Now(),
	})
}

// handleYesterdayResult returns the fixed mock result shown on the page
func (s *Server) handleYesterdayResult(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result":    s.forecaster.YesterdayResult(),
		"note":      "Mock result for display check only",
		"timestamp": time.Now(),
	})
}

// handleGetResult looks up the observed rainfall for one past day
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	result, err := s.forecaster.HistoricalResult(r.Context(), date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("Invalid date: %s", date),
		})
		return
	}
	if result.FetchFailed {
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error": "data retrieval failed",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"result":    result,
		"timestamp": time.Now(),
	})
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// writeJSON encodes v as the JSON response body
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
