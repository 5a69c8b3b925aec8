package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"learnpath-backend/internal/middleware"
	"learnpath-backend/internal/models"
	"learnpath-backend/internal/services"
)

type RecommendationHandler struct {
	service *services.RecommendationService
}

func NewRecommendationHandler(service *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Mine returns the interest-driven feed for the authenticated learner.
func (h *RecommendationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	resources, err := h.service.GetMyRecommendations(r.Context(), studentID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": resources})
}

// ForStudent returns the authoritative feed for a named student: teacher
// picks first, then top-rated fill. The route carries the teacher/admin gate.
func (h *RecommendationHandler) ForStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid student ID", r))
		return
	}

	resources, err := h.service.GetRecommendationsForStudent(r.Context(), studentID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"recommendations": resources})
}

// Recommend records a teacher pushing a resource to a student.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	teacherID := middleware.GetUserID(r.Context())

	var req models.RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"student_id": "Student ID must be a valid UUID"}, r))
		return
	}

	resourceID, err := uuid.Parse(req.ResourceID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"resource_id": "Resource ID must be a valid UUID"}, r))
		return
	}

	if err := h.service.Recommend(r.Context(), teacherID, studentID, resourceID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Recommendation recorded"})
}

// SubmitFeedback upserts the learner's rating for a resource and returns the
// recomputed average.
func (h *RecommendationHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	var req models.ResourceFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	resourceID, err := uuid.Parse(req.ResourceID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"resource_id": "Resource ID must be a valid UUID"}, r))
		return
	}

	average, err := h.service.SubmitFeedback(r.Context(), studentID, resourceID, req.Rating, req.Feedback)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "Feedback recorded",
		"average_rating": average,
	})
}
