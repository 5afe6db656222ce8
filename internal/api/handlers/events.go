package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gatherhub/server/internal/api/problem"
	"github.com/gatherhub/server/internal/domain/events"
)

type EventsHandler struct {
	Service *events.Service
	Env     string
}

func NewEventsHandler(service *events.Service, env string) *EventsHandler {
	return &EventsHandler{Service: service, Env: env}
}

// createEventRequest carries fields straight through to the store. No type
// or range checks apply: a negative capacity is accepted as-is.
type createEventRequest struct {
	EventName   string `json:"event_name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Capacity    int32  `json:"capacity"`
}

type rsvpResponse struct {
	Message string `json:"message"`
}

// List handles GET /events: every row, no filters, no pagination.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		problem.Write(w, r, http.StatusInternalServerError, "https://gatherhub.dev/problems/server-error", "Server error", nil, h.Env)
		return
	}

	items, err := h.Service.List(r.Context())
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, "https://gatherhub.dev/problems/server-error", "Error fetching events", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /events.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		problem.Write(w, r, http.StatusInternalServerError, "https://gatherhub.dev/problems/server-error", "Server error", nil, h.Env)
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.Write(w, r, http.StatusBadRequest, "https://gatherhub.dev/problems/validation-error", "Invalid request", err, h.Env)
		return
	}

	item, err := h.Service.Create(r.Context(), events.CreateParams{
		Name:        req.EventName,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Capacity:    req.Capacity,
	})
	if err != nil {
		problem.Write(w, r, http.StatusInternalServerError, "https://gatherhub.dev/problems/server-error", "Error creating event", err, h.Env)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// RSVP handles POST /events/rsvp/{id}.
func (h *EventsHandler) RSVP(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.Service == nil {
		problem.Write(w, r, http.StatusInternalServerError, "https://gatherhub.dev/problems/server-error", "Server error", nil, h.Env)
		return
	}

	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		problem.Write(w, r, http.StatusNotFound, "https://gatherhub.dev/problems/not-found", "Event not found", events.ErrNotFound, h.Env)
		return
	}

	if _, err := h.Service.RSVP(r.Context(), id); err != nil {
		if errors.Is(err, events.ErrNotFound) {
			problem.Write(w, r, http.StatusNotFound, "https://gatherhub.dev/problems/not-found", "Event not found", err, h.Env)
			return
		}
		problem.Write(w, r, http.StatusInternalServerError, "https://gatherhub.dev/problems/server-error", "Error RSVPing for event", err, h.Env)
		return
	}

	writeJSON(w, http.StatusOK, rsvpResponse{Message: "RSVP successful"})
}
