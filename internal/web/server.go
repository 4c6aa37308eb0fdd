// Package web exposes the chat and calendar APIs over HTTP. Transport
// only: all behavior lives in the service layer.
package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/apricot12/concierge/internal/contract"
	"github.com/apricot12/concierge/internal/domain"
	appLog "github.com/apricot12/concierge/internal/log"
	"github.com/apricot12/concierge/internal/service"
)

// defaultSessionKey is used whenever the client does not name a session.
const defaultSessionKey = "default"

// Server routes HTTP requests to the assistant and event services.
type Server struct {
	assistant service.AssistantService
	events    service.EventService
	mux       *http.ServeMux
}

// NewServer constructs a Server over the given services.
func NewServer(assistant service.AssistantService, events service.EventService) *Server {
	s := &Server{
		assistant: assistant,
		events:    events,
		mux:       http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST /api/chat", s.handleChat)
	s.mux.HandleFunc("POST /api/clear", s.handleClear)
	s.mux.HandleFunc("GET /api/calendar/events", s.handleListEvents)
	s.mux.HandleFunc("POST /api/calendar/events", s.handleCreateEvent)
	s.mux.HandleFunc("GET /api/calendar/events/{id}", s.handleGetEvent)
	s.mux.HandleFunc("PUT /api/calendar/events/{id}", s.handleUpdateEvent)
	s.mux.HandleFunc("DELETE /api/calendar/events/{id}", s.handleDeleteEvent)
}

// Handler returns the server's handler with request logging applied.
func (s *Server) Handler() http.Handler {
	return logRequests(s.mux)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		appLog.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	sessionKey := domain.CoalesceStr(req.SessionID, defaultSessionKey)

	result, err := s.assistant.HandleChat(r.Context(), sessionKey, req.Message)
	if err != nil {
		// The user gets a generic failure; the cause stays in the log.
		appLog.Error("chat request failed", err, "session", sessionKey)
		writeError(w, http.StatusBadGateway, "Failed to process message")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

type clearRequest struct {
	SessionID string `json:"sessionId"`
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sessionKey := domain.CoalesceStr(req.SessionID, defaultSessionKey)
	if err := s.assistant.ClearSession(r.Context(), sessionKey); err != nil {
		appLog.Error("clearing session failed", err, "session", sessionKey)
		writeError(w, http.StatusInternalServerError, "Failed to clear session")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sessionKey := domain.CoalesceStr(q.Get("sessionId"), defaultSessionKey)

	var rng *contract.DateRange
	if start, end := q.Get("startDate"), q.Get("endDate"); start != "" && end != "" {
		rng = &contract.DateRange{Start: start, End: end}
	}

	events, err := s.events.List(r.Context(), sessionKey, rng)
	if err != nil {
		appLog.Error("listing events failed", err, "session", sessionKey)
		writeError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	sessionKey := domain.CoalesceStr(r.URL.Query().Get("sessionId"), defaultSessionKey)
	id := r.PathValue("id")

	event, err := s.events.Get(r.Context(), sessionKey, id)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		appLog.Error("fetching event failed", err, "session", sessionKey, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"event": event})
}

type createEventRequest struct {
	SessionID string              `json:"sessionId"`
	Event     contract.EventInput `json:"event"`
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sessionKey := domain.CoalesceStr(req.SessionID, defaultSessionKey)

	event, err := s.events.Create(r.Context(), sessionKey, req.Event)
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, "Event title and start date/time are required")
		return
	}
	if err != nil {
		appLog.Error("creating event failed", err, "session", sessionKey)
		writeError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"event": event})
}

type updateEventRequest struct {
	Updates *domain.EventPatch `json:"updates"`
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	sessionKey := domain.CoalesceStr(r.URL.Query().Get("sessionId"), defaultSessionKey)
	id := r.PathValue("id")

	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Updates == nil {
		writeError(w, http.StatusBadRequest, "Updates are required")
		return
	}

	event, err := s.events.Update(r.Context(), sessionKey, id, *req.Updates)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		appLog.Error("updating event failed", err, "session", sessionKey, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"event": event})
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	sessionKey := domain.CoalesceStr(r.URL.Query().Get("sessionId"), defaultSessionKey)
	id := r.PathValue("id")

	err := s.events.Delete(r.Context(), sessionKey, id)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		appLog.Error("deleting event failed", err, "session", sessionKey, "id", id)
		writeError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Event deleted successfully",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		appLog.Error("encoding response failed", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}
