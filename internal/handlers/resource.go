package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"learnpath-backend/internal/middleware"
	"learnpath-backend/internal/models"
	"learnpath-backend/internal/repository"
	"learnpath-backend/internal/services"
)

const maxRankedCount = 50

type ResourceHandler struct {
	repo           *repository.ResourceRepo
	recommendation *services.RecommendationService
	popularCount   int
	recentCount    int
}

func NewResourceHandler(repo *repository.ResourceRepo, recommendation *services.RecommendationService, popularCount, recentCount int) *ResourceHandler {
	return &ResourceHandler{
		repo:           repo,
		recommendation: recommendation,
		popularCount:   popularCount,
		recentCount:    recentCount,
	}
}

func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	creatorID := middleware.GetUserID(r.Context())

	var req models.ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := validateResourceRequest(req); len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	resource := &models.Resource{
		ResourceName: req.ResourceName,
		ResourceType: req.ResourceType,
		Description:  req.Description,
		ResourceURL:  req.ResourceURL,
		CreatedBy:    creatorID,
	}

	if err := h.repo.Create(r.Context(), resource); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create resource", r))
		return
	}

	h.recommendation.InvalidateRankedCache(r.Context())

	writeJSON(w, http.StatusCreated, map[string]interface{}{"resource": resource})
}

func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	resources, err := h.repo.ListAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to list resources", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"resources": resources})
}

func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	resourceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid resource ID", r))
		return
	}

	resource, err := h.repo.GetByID(r.Context(), resourceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Resource not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load resource", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"resource": resource})
}

func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	resourceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid resource ID", r))
		return
	}

	var req models.ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if fields := validateResourceRequest(req); len(fields) > 0 {
		writeJSON(w, http.StatusBadRequest, errorRespWithFields("VALIDATION_ERROR", "Validation failed", fields, r))
		return
	}

	resource, err := h.repo.GetByID(r.Context(), resourceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Resource not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load resource", r))
		return
	}

	resource.ResourceName = req.ResourceName
	resource.ResourceType = req.ResourceType
	resource.Description = req.Description
	resource.ResourceURL = req.ResourceURL

	if err := h.repo.Update(r.Context(), resource); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update resource", r))
		return
	}

	h.recommendation.InvalidateRankedCache(r.Context())

	writeJSON(w, http.StatusOK, map[string]interface{}{"resource": resource})
}

func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	resourceID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid resource ID", r))
		return
	}

	if _, err := h.repo.GetByID(r.Context(), resourceID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Resource not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load resource", r))
		return
	}

	if err := h.repo.Delete(r.Context(), resourceID); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete resource", r))
		return
	}

	h.recommendation.InvalidateRankedCache(r.Context())

	writeJSON(w, http.StatusOK, map[string]string{"message": "Resource deleted"})
}

func (h *ResourceHandler) Popular(w http.ResponseWriter, r *http.Request) {
	count := countParam(r, h.popularCount)

	resources, err := h.recommendation.GetPopularResources(r.Context(), count)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load popular resources", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"resources": resources})
}

func (h *ResourceHandler) Recent(w http.ResponseWriter, r *http.Request) {
	count := countParam(r, h.recentCount)

	resources, err := h.recommendation.GetRecentResources(r.Context(), count)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to load recent resources", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"resources": resources})
}

// countParam reads an optional ?count= override, clamped to a sane range so a
// caller cannot force a full catalog dump through the ranked endpoints.
func countParam(r *http.Request, fallback int) int {
	raw := r.URL.Query().Get("count")
	if raw == "" {
		return fallback
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 1 {
		return fallback
	}
	if count > maxRankedCount {
		return maxRankedCount
	}
	return count
}

func validateResourceRequest(req models.ResourceRequest) map[string]string {
	fields := make(map[string]string)

	if req.ResourceName == "" {
		fields["resource_name"] = "Resource name is required"
	}
	if req.ResourceType == "" {
		fields["resource_type"] = "Resource type is required"
	}
	if req.ResourceURL == "" {
		fields["resource_url"] = "Resource URL is required"
	}

	return fields
}
