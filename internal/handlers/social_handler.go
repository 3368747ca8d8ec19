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

type SocialLinkHandler struct {
	repo      interfaces.SocialLinkRepository
	validator *validator.Validate
}

func NewSocialLinkHandler(repo interfaces.SocialLinkRepository) *SocialLinkHandler {
	return &SocialLinkHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

// ListSocialLinks returns every link, active or not, in sort order.
// @Tags Social
// @Summary List social links (admin)
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.SocialLink
// @Router /api/v1/admin/social-links [get]
func (h *SocialLinkHandler) ListSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.repo.List(r.Context(), false)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to list social links")
		return
	}
	if links == nil {
		links = []models.SocialLink{}
	}
	writeJSON(w, http.StatusOK, links)
}

// CreateSocialLink adds a link. New links append to the end of the sort
// order and are never primary.
// @Tags Social
// @Summary Create social link
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateSocialLinkRequest true "Link"
// @Success 201 {object} models.SocialLink
// @Router /api/v1/admin/social-links [post]
func (h *SocialLinkHandler) CreateSocialLink(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSocialLinkRequest
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
			writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to create social link")
			return
		}
		sortOrder = len(existing)
	}

	link := &models.SocialLink{
		ID:        uuid.NewString(),
		Platform:  req.Platform,
		URL:       req.URL,
		IsPrimary: false,
		IsActive:  true,
		SortOrder: sortOrder,
	}

	if err := h.repo.Create(r.Context(), link); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to create social link")
		return
	}

	writeJSON(w, http.StatusCreated, link)
}

// UpdateSocialLink patches a link row.
// @Tags Social
// @Summary Update social link
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param request body models.UpdateSocialLinkRequest true "Fields to update"
// @Success 200 {object} models.SocialLink
// @Router /api/v1/admin/social-links/{id} [put]
func (h *SocialLinkHandler) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Link ID is required")
		return
	}

	var req models.UpdateSocialLinkRequest
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
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Social link not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to update social link")
		return
	}

	link, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload social link")
		return
	}
	writeJSON(w, http.StatusOK, link)
}

// DeleteSocialLink removes a link row.
// @Tags Social
// @Summary Delete social link
// @Security BearerAuth
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {object} map[string]string
// @Router /api/v1/admin/social-links/{id} [delete]
func (h *SocialLinkHandler) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Link ID is required")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Social link not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to delete social link")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "social link deleted successfully",
		"id":      id,
	})
}

// SetPrimarySocialLink toggles the primary flag. Promoting a link runs in
// two phases, clear-then-mark, with no transaction: a failure after the
// clear leaves no primary link. Calling it on the current primary just
// clears the flag.
// @Tags Social
// @Summary Set primary social link
// @Security BearerAuth
// @Produce json
// @Param id path string true "Link ID"
// @Success 200 {array} models.SocialLink
// @Router /api/v1/admin/social-links/{id}/primary [post]
func (h *SocialLinkHandler) SetPrimarySocialLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Link ID is required")
		return
	}

	link, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Social link not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load social link")
		return
	}

	if err := h.repo.ClearPrimary(r.Context()); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to update primary link")
		return
	}

	if !link.IsPrimary {
		if err := h.repo.MarkPrimary(r.Context(), id); err != nil {
			writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to update primary link")
			return
		}
	}

	links, err := h.repo.List(r.Context(), false)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload social links")
		return
	}
	if links == nil {
		links = []models.SocialLink{}
	}
	writeJSON(w, http.StatusOK, links)
}
