package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"phlegm-site/internal/interfaces"
	"phlegm-site/internal/models"
)

// AdminContentHandler edits the singleton sections. Loads return the raw
// stored row with no fallback merging, so the operator sees actual emptiness;
// saves replace every editable field in one update. Last write wins.
type AdminContentHandler struct {
	repo      interfaces.ContentRepository
	validator *validator.Validate
}

func NewAdminContentHandler(repo interfaces.ContentRepository) *AdminContentHandler {
	return &AdminContentHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

func writeSingletonNotFound(w http.ResponseWriter, section string) {
	// A missing seed row is "nothing to edit yet", not a server fault.
	writeJSONErrorResponse(w, http.StatusNotFound, "not_found", section+" content has not been seeded")
}

// GetHero returns the raw hero row.
// @Tags Admin
// @Summary Load hero content
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.HeroContent
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/admin/content/hero [get]
func (h *AdminContentHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, err := h.repo.GetHero(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "hero")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load hero content")
		return
	}
	writeJSON(w, http.StatusOK, hero)
}

// UpdateHero replaces the hero row.
// @Tags Admin
// @Summary Save hero content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateHeroContentRequest true "Hero content"
// @Success 200 {object} models.HeroContent
// @Router /api/v1/admin/content/hero [put]
func (h *AdminContentHandler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateHeroContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	hero, err := h.repo.GetHero(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "hero")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load hero content")
		return
	}

	if err := h.repo.UpdateHero(r.Context(), hero.ID, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to save hero content")
		return
	}

	updated, err := h.repo.GetHero(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload hero content")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// GetBanner returns the raw banner row.
// @Tags Admin
// @Summary Load banner content
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.BannerContent
// @Router /api/v1/admin/content/banner [get]
func (h *AdminContentHandler) GetBanner(w http.ResponseWriter, r *http.Request) {
	banner, err := h.repo.GetBanner(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "banner")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load banner content")
		return
	}
	writeJSON(w, http.StatusOK, banner)
}

// UpdateBanner replaces the banner row.
// @Tags Admin
// @Summary Save banner content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateBannerContentRequest true "Banner content"
// @Success 200 {object} models.BannerContent
// @Router /api/v1/admin/content/banner [put]
func (h *AdminContentHandler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBannerContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	// media_type must track the presence of media_url.
	hasMedia := req.MediaURL != nil && *req.MediaURL != ""
	hasType := req.MediaType != nil && *req.MediaType != ""
	if hasMedia != hasType {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "media_url and media_type must be set together")
		return
	}

	banner, err := h.repo.GetBanner(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "banner")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load banner content")
		return
	}

	if err := h.repo.UpdateBanner(r.Context(), banner.ID, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to save banner content")
		return
	}

	updated, err := h.repo.GetBanner(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload banner content")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// GetBio returns the raw bio row.
// @Tags Admin
// @Summary Load bio content
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.BioContent
// @Router /api/v1/admin/content/bio [get]
func (h *AdminContentHandler) GetBio(w http.ResponseWriter, r *http.Request) {
	bio, err := h.repo.GetBio(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "bio")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load bio content")
		return
	}
	writeJSON(w, http.StatusOK, bio)
}

// UpdateBio replaces the bio row.
// @Tags Admin
// @Summary Save bio content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateBioContentRequest true "Bio content"
// @Success 200 {object} models.BioContent
// @Router /api/v1/admin/content/bio [put]
func (h *AdminContentHandler) UpdateBio(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBioContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	bio, err := h.repo.GetBio(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "bio")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load bio content")
		return
	}

	if err := h.repo.UpdateBio(r.Context(), bio.ID, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to save bio content")
		return
	}

	updated, err := h.repo.GetBio(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload bio content")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// GetAbout returns the raw about row.
// @Tags Admin
// @Summary Load about content
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.AboutContent
// @Router /api/v1/admin/content/about [get]
func (h *AdminContentHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.repo.GetAbout(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "about")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load about content")
		return
	}
	writeJSON(w, http.StatusOK, about)
}

// UpdateAbout replaces the about row.
// @Tags Admin
// @Summary Save about content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateAboutContentRequest true "About content"
// @Success 200 {object} models.AboutContent
// @Router /api/v1/admin/content/about [put]
func (h *AdminContentHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAboutContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	about, err := h.repo.GetAbout(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "about")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load about content")
		return
	}

	if err := h.repo.UpdateAbout(r.Context(), about.ID, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to save about content")
		return
	}

	updated, err := h.repo.GetAbout(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload about content")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// GetLegal returns the raw legal row.
// @Tags Admin
// @Summary Load legal content
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.LegalContent
// @Router /api/v1/admin/content/legal [get]
func (h *AdminContentHandler) GetLegal(w http.ResponseWriter, r *http.Request) {
	legal, err := h.repo.GetLegal(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "legal")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load legal content")
		return
	}
	writeJSON(w, http.StatusOK, legal)
}

// UpdateLegal replaces the legal row.
// @Tags Admin
// @Summary Save legal content
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateLegalContentRequest true "Legal content"
// @Success 200 {object} models.LegalContent
// @Router /api/v1/admin/content/legal [put]
func (h *AdminContentHandler) UpdateLegal(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateLegalContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	legal, err := h.repo.GetLegal(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "legal")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load legal content")
		return
	}

	if err := h.repo.UpdateLegal(r.Context(), legal.ID, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to save legal content")
		return
	}

	updated, err := h.repo.GetLegal(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload legal content")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// GetBooking returns the raw booking row.
// @Tags Admin
// @Summary Load booking info
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.BookingInfo
// @Router /api/v1/admin/booking [get]
func (h *AdminContentHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.repo.GetBooking(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "booking")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load booking info")
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

// UpdateBooking replaces the booking row.
// @Tags Admin
// @Summary Save booking info
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateBookingInfoRequest true "Booking info"
// @Success 200 {object} models.BookingInfo
// @Router /api/v1/admin/booking [put]
func (h *AdminContentHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBookingInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	booking, err := h.repo.GetBooking(r.Context())
	if err != nil {
		if err == sql.ErrNoRows {
			writeSingletonNotFound(w, "booking")
			return
		}
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to load booking info")
		return
	}

	if err := h.repo.UpdateBooking(r.Context(), booking.ID, &req); err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to save booking info")
		return
	}

	updated, err := h.repo.GetBooking(r.Context())
	if err != nil {
		writeJSONErrorResponse(w, http.StatusInternalServerError, "server_error", "Failed to reload booking info")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
