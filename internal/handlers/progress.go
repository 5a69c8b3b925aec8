package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"learnpath-backend/internal/middleware"
	"learnpath-backend/internal/services"
)

type ProgressHandler struct {
	service *services.ProgressService
}

func NewProgressHandler(service *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: service}
}

// Mine returns the authenticated learner's own progress report.
func (h *ProgressHandler) Mine(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	report, err := h.service.GetProgress(r.Context(), studentID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to build progress report", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"progress": report})
}

// ForStudent returns a named student's report. The teacher/admin gate sits on
// the route.
func (h *ProgressHandler) ForStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid student ID", r))
		return
	}

	report, err := h.service.GetProgress(r.Context(), studentID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to build progress report", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"progress": report})
}
