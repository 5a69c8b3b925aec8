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

type GoalHandler struct {
	repo *repository.GoalRepo
}

func NewGoalHandler(repo *repository.GoalRepo) *GoalHandler {
	return &GoalHandler{repo: repo}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	var req models.GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := validateGoalRequest(req); len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	goal := &models.Goal{
		StudentID:       studentID,
		GoalName:        req.GoalName,
		GoalDescription: req.GoalDescription,
		DueDate:         req.DueDate,
		Priority:        req.Priority,
	}

	if err := h.repo.Create(r.Context(), goal); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create goal", r))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"goal": goal})
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	goals, err := h.repo.ListByStudent(r.Context(), studentID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list goals", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"goals": goals})
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	goalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid goal ID", r))
		return
	}

	var req models.GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := validateGoalRequest(req); len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	goal, ok := h.loadOwnGoal(w, r, goalID, studentID)
	if !ok {
		return
	}

	goal.GoalName = req.GoalName
	goal.GoalDescription = req.GoalDescription
	goal.DueDate = req.DueDate
	goal.Priority = req.Priority

	if err := h.repo.Update(r.Context(), goal); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update goal", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"goal": goal})
}

// UpdateStatus moves a goal between pending, in_progress and completed.
// Status changes are explicit; nothing in the system completes a goal on the
// student's behalf.
func (h *GoalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	goalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid goal ID", r))
		return
	}

	var req models.GoalStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if !models.ValidGoalStatus(req.Status) {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed",
			map[string]string{"status": "Status must be pending, in_progress or completed"}, r))
		return
	}

	goal, ok := h.loadOwnGoal(w, r, goalID, studentID)
	if !ok {
		return
	}

	if err := h.repo.UpdateStatus(r.Context(), goalID, req.Status); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update goal status", r))
		return
	}

	goal.Status = req.Status
	writeJSON(w, http.StatusOK, map[string]interface{}{"goal": goal})
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	studentID := middleware.GetUserID(r.Context())

	goalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid goal ID", r))
		return
	}

	if _, ok := h.loadOwnGoal(w, r, goalID, studentID); !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), goalID); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete goal", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Goal deleted"})
}

func (h *GoalHandler) loadOwnGoal(w http.ResponseWriter, r *http.Request, goalID, studentID uuid.UUID) (*models.Goal, bool) {
	goal, err := h.repo.GetByID(r.Context(), goalID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Goal not found", r))
			return nil, false
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load goal", r))
		return nil, false
	}

	if goal.StudentID != studentID {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "You can only manage your own goals", r))
		return nil, false
	}

	return goal, true
}

func validateGoalRequest(req models.GoalRequest) map[string]string {
	fields := make(map[string]string)

	if req.GoalName == "" {
		fields["goal_name"] = "Goal name is required"
	}
	if req.Priority < 0 {
		fields["priority"] = "Priority must not be negative"
	}

	return fields
}
