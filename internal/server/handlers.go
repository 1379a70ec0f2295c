package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/javiermolinar/horario/internal/catalog"
	"github.com/javiermolinar/horario/internal/timetable"
)

// Handler holds the HTTP handlers.
type Handler struct {
	finder catalog.Finder
}

// NewHandler creates handlers answering from finder.
func NewHandler(finder catalog.Finder) *Handler {
	return &Handler{finder: finder}
}

// HealthCheck reports liveness.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "horario",
	})
}

// Sections returns every section meeting at ?day=&slot=.
func (h *Handler) Sections(w http.ResponseWriter, r *http.Request) {
	day := strings.TrimSpace(r.URL.Query().Get("day"))
	slot := strings.TrimSpace(r.URL.Query().Get("slot"))
	if day == "" || slot == "" {
		WriteError(w, http.StatusBadRequest, "day and slot are required")
		return
	}

	sections, err := h.finder.FindSections(r.Context(), timetable.Coordinate{Day: day, Slot: slot})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "failed to load sections")
		return
	}
	if sections == nil {
		sections = []timetable.Section{}
	}
	WriteJSON(w, http.StatusOK, sections)
}

// WriteJSON writes v as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg}.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}
