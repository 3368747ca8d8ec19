package handlers

import (
	"net/http"

	"phlegm-site/internal/content"
)

// PublicContentHandler serves the read path of the marketing site. Every
// response is render-safe: failures resolve to fallback content, never to an
// error status.
type PublicContentHandler struct {
	resolver *content.Resolver
}

func NewPublicContentHandler(resolver *content.Resolver) *PublicContentHandler {
	return &PublicContentHandler{resolver: resolver}
}

// GetHero returns the hero section.
// @Tags Content
// @Summary Hero content
// @Produce json
// @Success 200 {object} content.Hero
// @Router /api/v1/content/hero [get]
func (h *PublicContentHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.Hero(r.Context()))
}

// GetBanner returns the announcement banner with its render decision.
// @Tags Content
// @Summary Announcement banner
// @Produce json
// @Success 200 {object} content.Banner
// @Router /api/v1/content/banner [get]
func (h *PublicContentHandler) GetBanner(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.Banner(r.Context()))
}

// GetBio returns the bio modal content.
// @Tags Content
// @Summary Bio content
// @Produce json
// @Success 200 {object} content.Bio
// @Router /api/v1/content/bio [get]
func (h *PublicContentHandler) GetBio(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.Bio(r.Context()))
}

// GetAbout returns the about modal content together with the legal block the
// page substitutes when use_legal_content is set.
// @Tags Content
// @Summary About content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/content/about [get]
func (h *PublicContentHandler) GetAbout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"about": h.resolver.About(r.Context()),
		"legal": h.resolver.Legal(r.Context()),
	})
}

// GetLegal returns the legal modal content.
// @Tags Content
// @Summary Legal content
// @Produce json
// @Success 200 {object} content.Legal
// @Router /api/v1/content/legal [get]
func (h *PublicContentHandler) GetLegal(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.Legal(r.Context()))
}

// GetContact returns active social links and booking details.
// @Tags Content
// @Summary Contact content
// @Produce json
// @Success 200 {object} content.Contact
// @Router /api/v1/content/contact [get]
func (h *PublicContentHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.Contact(r.Context()))
}

// GetUpcomingShows returns shows dated today or later, soonest first.
// @Tags Content
// @Summary Upcoming shows
// @Produce json
// @Success 200 {array} models.UpcomingShow
// @Router /api/v1/shows/upcoming [get]
func (h *PublicContentHandler) GetUpcomingShows(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.UpcomingShows(r.Context()))
}

// GetPastShows returns past shows, most recent first.
// @Tags Content
// @Summary Past shows
// @Produce json
// @Success 200 {array} models.PastShow
// @Router /api/v1/shows/past [get]
func (h *PublicContentHandler) GetPastShows(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.PastShows(r.Context()))
}

// GetTaglines returns the active rotation taglines in display order.
// @Tags Content
// @Summary Rotating taglines
// @Produce json
// @Success 200 {array} models.Tagline
// @Router /api/v1/taglines [get]
func (h *PublicContentHandler) GetTaglines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.resolver.Taglines(r.Context()))
}
