package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"learnpath-backend/internal/middleware"
	"learnpath-backend/internal/models"
	"learnpath-backend/internal/repository"
)

type ActivityHandler struct {
	repo *repository.ActivityRepo
}

func NewActivityHandler(repo *repository.ActivityRepo) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	var req models.ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := validateActivityRequest(req); len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	activity := &models.Activity{
		StudentID:    studentID,
		ActivityName: req.ActivityName,
		ActivityType: req.ActivityType,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Description:  req.Description,
	}

	if err := h.repo.Create(r.Context(), activity); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create activity", r))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"activity": activity})
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	activities, err := h.repo.ListByStudent(r.Context(), studentID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list activities", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"activities": activities})
}

// ListForStudent lets a teacher or admin view a student's activities. The
// role gate sits on the route.
func (h *ActivityHandler) ListForStudent(w http.ResponseWriter, r *http.Request) {
	studentID, err := uuid.Parse(chi.URLParam(r, "studentID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid student ID", r))
		return
	}

	activities, err := h.repo.ListByStudent(r.Context(), studentID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list activities", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"activities": activities})
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	activityID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid activity ID", r))
		return
	}

	var req models.ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := validateActivityRequest(req); len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	activity, err := h.repo.GetByID(r.Context(), activityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Activity not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load activity", r))
		return
	}

	if activity.StudentID != studentID {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "You can only update your own activities", r))
		return
	}

	activity.ActivityName = req.ActivityName
	activity.ActivityType = req.ActivityType
	activity.StartTime = req.StartTime
	activity.EndTime = req.EndTime
	activity.Description = req.Description

	if err := h.repo.Update(r.Context(), activity); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update activity", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"activity": activity})
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	activityID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid activity ID", r))
		return
	}

	activity, err := h.repo.GetByID(r.Context(), activityID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Activity not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load activity", r))
		return
	}

	if activity.StudentID != studentID {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "You can only delete your own activities", r))
		return
	}

	if err := h.repo.Delete(r.Context(), activityID); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete activity", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Activity deleted"})
}

func validateActivityRequest(req models.ActivityRequest) map[string]string {
	fields := make(map[string]string)

	if req.ActivityName == "" {
		fields["activity_name"] = "Activity name is required"
	}
	if req.ActivityType == "" {
		fields["activity_type"] = "Activity type is required"
	}
	if req.StartTime.IsZero() {
		fields["start_time"] = "Start time is required"
	}
	if req.EndTime != nil && !req.StartTime.IsZero() && req.EndTime.Before(req.StartTime) {
		fields["end_time"] = "End time must not be before start time"
	}

	return fields
}
