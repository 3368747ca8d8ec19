package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"phlegm-site/internal/interfaces"
	"phlegm-site/internal/models"
)

type TaglineHandler struct {
	repo      interfaces.TaglineRepository
	validator *validator.Validate
}

func NewTaglineHandler(repo interfaces.TaglineRepository) *TaglineHandler {
	return &TaglineHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

// ListTaglines returns every tagline, active or not, in sort order.
// @Tags Taglines
// @Summary List taglines (admin)
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Tagline
// @Router /api/v1/admin/taglines [get]
func (h *TaglineHandler) ListTaglines(w http.ResponseWriter, r *http.Request) {
	taglines, err := h.repo.List(r.Context(), false)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to list taglines")
		return
	}
	if taglines == nil {
		taglines = []models.Tagline{}
	}
	writeJSON(w, http.StatusOK, taglines)
}

// CreateTagline adds a tagline, active by default, appended to the rotation.
// @Tags Taglines
// @Summary Create tagline
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateTaglineRequest true "Tagline"
// @Success 201 {object} models.Tagline
// @Router /api/v1/admin/taglines [post]
func (h *TaglineHandler) CreateTagline(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaglineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	sortOrder := 0
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	} else {
		existing, err := h.repo.List(r.Context(), false)
		if err != nil {
			writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to create tagline")
			return
		}
		sortOrder = len(existing)
	}

	tagline := &models.Tagline{
		ID:        uuid.NewString(),
		Text:      req.Text,
		SortOrder: sortOrder,
		IsActive:  true,
	}

	if err := h.repo.Create(r.Context(), tagline); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to create tagline")
		return
	}

	writeJSON(w, http.StatusCreated, tagline)
}

// UpdateTagline patches a tagline row (text edits and activation toggles).
// @Tags Taglines
// @Summary Update tagline
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Tagline ID"
// @Param request body models.UpdateTaglineRequest true "Fields to update"
// @Success 200 {object} models.Tagline
// @Router /api/v1/admin/taglines/{id} [put]
func (h *TaglineHandler) UpdateTagline(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Tagline ID is required")
		return
	}

	var req models.UpdateTaglineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.repo.Update(r.Context(), id, &req); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Tagline not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to update tagline")
		return
	}

	tagline, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload tagline")
		return
	}
	writeJSON(w, http.StatusOK, tagline)
}

// DeleteTagline removes a tagline row.
// @Tags Taglines
// @Summary Delete tagline
// @Security BearerAuth
// @Produce json
// @Param id path string true "Tagline ID"
// @Success 200 {object} map[string]string
// @Router /api/v1/admin/taglines/{id} [delete]
func (h *TaglineHandler) DeleteTagline(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Tagline ID is required")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Tagline not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to delete tagline")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "tagline deleted successfully",
		"id":      id,
	})
}
