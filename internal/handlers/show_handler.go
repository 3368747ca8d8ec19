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

type ShowHandler struct {
	repo      interfaces.ShowRepository
	validator *validator.Validate
}

func NewShowHandler(repo interfaces.ShowRepository) *ShowHandler {
	return &ShowHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

// ListUpcomingShows returns every upcoming-show row for the editor,
// including dates already in the past.
// @Tags Shows
// @Summary List upcoming shows (admin)
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.UpcomingShow
// @Router /api/v1/admin/shows/upcoming [get]
func (h *ShowHandler) ListUpcomingShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.repo.ListAllUpcoming(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to list shows")
		return
	}
	if shows == nil {
		shows = []models.UpcomingShow{}
	}
	writeJSON(w, http.StatusOK, shows)
}

// CreateUpcomingShow adds a show.
// @Tags Shows
// @Summary Create upcoming show
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateUpcomingShowRequest true "Show"
// @Success 201 {object} models.UpcomingShow
// @Router /api/v1/admin/shows/upcoming [post]
func (h *ShowHandler) CreateUpcomingShow(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUpcomingShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	show := &models.UpcomingShow{
		ID:        uuid.NewString(),
		ShowDate:  req.ShowDate,
		ShowTime:  req.ShowTime,
		EventName: req.EventName,
		Venue:     req.Venue,
		City:      req.City,
		TicketURL: req.TicketURL,
	}

	if err := h.repo.CreateUpcoming(r.Context(), show); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to create show")
		return
	}

	writeJSON(w, http.StatusCreated, show)
}

// UpdateUpcomingShow patches a show row.
// @Tags Shows
// @Summary Update upcoming show
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Show ID"
// @Param request body models.UpdateUpcomingShowRequest true "Fields to update"
// @Success 200 {object} models.UpcomingShow
// @Router /api/v1/admin/shows/upcoming/{id} [put]
func (h *ShowHandler) UpdateUpcomingShow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Show ID is required")
		return
	}

	var req models.UpdateUpcomingShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.repo.UpdateUpcoming(r.Context(), id, &req); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Show not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to update show")
		return
	}

	show, err := h.repo.GetUpcomingByID(r.Context(), id)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload show")
		return
	}
	writeJSON(w, http.StatusOK, show)
}

// DeleteUpcomingShow removes a show row.
// @Tags Shows
// @Summary Delete upcoming show
// @Security BearerAuth
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} map[string]string
// @Router /api/v1/admin/shows/upcoming/{id} [delete]
func (h *ShowHandler) DeleteUpcomingShow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Show ID is required")
		return
	}

	if err := h.repo.DeleteUpcoming(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Show not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to delete show")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "show deleted successfully",
		"id":      id,
	})
}

// ListPastShows returns past shows, most recent first.
// @Tags Shows
// @Summary List past shows (admin)
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PastShow
// @Router /api/v1/admin/shows/past [get]
func (h *ShowHandler) ListPastShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.repo.ListPast(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to list shows")
		return
	}
	if shows == nil {
		shows = []models.PastShow{}
	}
	writeJSON(w, http.StatusOK, shows)
}

// CreatePastShow adds a past show. image_urls may be empty; the page shows a
// "no photos" placeholder.
// @Tags Shows
// @Summary Create past show
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreatePastShowRequest true "Show"
// @Success 201 {object} models.PastShow
// @Router /api/v1/admin/shows/past [post]
func (h *ShowHandler) CreatePastShow(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePastShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	show := &models.PastShow{
		ID:        uuid.NewString(),
		ShowDate:  req.ShowDate,
		Venue:     req.Venue,
		City:      req.City,
		EventName: req.EventName,
		ImageURLs: req.ImageURLs,
	}
	if show.ImageURLs == nil {
		show.ImageURLs = []string{}
	}

	if err := h.repo.CreatePast(r.Context(), show); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to create show")
		return
	}

	writeJSON(w, http.StatusCreated, show)
}

// UpdatePastShow patches a past-show row.
// @Tags Shows
// @Summary Update past show
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Show ID"
// @Param request body models.UpdatePastShowRequest true "Fields to update"
// @Success 200 {object} models.PastShow
// @Router /api/v1/admin/shows/past/{id} [put]
func (h *ShowHandler) UpdatePastShow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Show ID is required")
		return
	}

	var req models.UpdatePastShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	if err := h.repo.UpdatePast(r.Context(), id, &req); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Show not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to update show")
		return
	}

	show, err := h.repo.GetPastByID(r.Context(), id)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload show")
		return
	}
	writeJSON(w, http.StatusOK, show)
}

// DeletePastShow removes a past-show row.
// @Tags Shows
// @Summary Delete past show
// @Security BearerAuth
// @Produce json
// @Param id path string true "Show ID"
// @Success 200 {object} map[string]string
// @Router /api/v1/admin/shows/past/{id} [delete]
func (h *ShowHandler) DeletePastShow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Show ID is required")
		return
	}

	if err := h.repo.DeletePast(r.Context(), id); err != nil {
		if err == sql.ErrNoRows {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Show not found")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to delete show")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "show deleted successfully",
		"id":      id,
	})
}
