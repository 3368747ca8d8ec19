package content

import (
	"context"
	"log"
	"time"

	"phlegm-site/internal/interfaces"
	"phlegm-site/internal/models"
)

// Resolver produces render-safe section values. Every resolution is one
// fresh fetch; a fetch failure or missing row falls back to the compile-time
// constants and is logged, never surfaced to the visitor. No retries, no
// caching. Resolving twice with no intervening write yields identical values.
type Resolver struct {
	content  interfaces.ContentRepository
	shows    interfaces.ShowRepository
	social   interfaces.SocialLinkRepository
	taglines interfaces.TaglineRepository

	now func() time.Time
}

func NewResolver(
	content interfaces.ContentRepository,
	shows interfaces.ShowRepository,
	social interfaces.SocialLinkRepository,
	taglines interfaces.TaglineRepository,
) *Resolver {
	return &Resolver{
		content:  content,
		shows:    shows,
		social:   social,
		taglines: taglines,
		now:      time.Now,
	}
}

func (r *Resolver) Hero(ctx context.Context) Hero {
	row, err := r.content.GetHero(ctx)
	if err != nil {
		log.Printf("Resolving hero content from fallback: %v", err)
		return FallbackHero
	}

	return Hero{
		VideoURL: orTextPtr(row.VideoURL, FallbackHero.VideoURL),
		Tagline:  orText(row.Tagline, FallbackHero.Tagline),
	}
}

func (r *Resolver) Banner(ctx context.Context) Banner {
	row, err := r.content.GetBanner(ctx)
	if err != nil {
		log.Printf("Resolving banner content from fallback: %v", err)
		return FallbackBanner
	}

	// A disabled banner short-circuits: nothing renders regardless of the
	// other fields, and no fallback text leaks through.
	if !row.Enabled {
		return Banner{Display: false}
	}

	return Banner{
		Display:   true,
		Text:      orText(row.Text, FallbackBanner.Text),
		Subtext:   orTextPtr(row.Subtext, FallbackBanner.Subtext),
		MediaURL:  orTextPtr(row.MediaURL, FallbackBanner.MediaURL),
		MediaType: orTextPtr(row.MediaType, FallbackBanner.MediaType),
		LinkURL:   orTextPtr(row.LinkURL, FallbackBanner.LinkURL),
		LinkText:  orTextPtr(row.LinkText, FallbackBanner.LinkText),
	}
}

func (r *Resolver) Bio(ctx context.Context) Bio {
	row, err := r.content.GetBio(ctx)
	if err != nil {
		log.Printf("Resolving bio content from fallback: %v", err)
		return FallbackBio
	}

	return Bio{
		HeroVideoURL:    orTextPtr(row.HeroVideoURL, FallbackBio.HeroVideoURL),
		HeroVideoWidth:  orDimension(row.HeroVideoWidth, FallbackBio.HeroVideoWidth),
		HeroVideoHeight: orDimension(row.HeroVideoHeight, FallbackBio.HeroVideoHeight),
		Title:           orText(row.Title, FallbackBio.Title),
		Tagline:         orText(row.Tagline, FallbackBio.Tagline),
		BioText:         orText(row.BioText, FallbackBio.BioText),
		SpeaksInItems:   orList(row.SpeaksInItems, FallbackBio.SpeaksInItems),
		ClosingText:     orText(row.ClosingText, FallbackBio.ClosingText),
	}
}

func (r *Resolver) About(ctx context.Context) About {
	row, err := r.content.GetAbout(ctx)
	if err != nil {
		log.Printf("Resolving about content from fallback: %v", err)
		return FallbackAbout
	}

	return About{
		HeroVideoURL:    orTextPtr(row.HeroVideoURL, FallbackAbout.HeroVideoURL),
		HeroVideoWidth:  orDimension(row.HeroVideoWidth, FallbackAbout.HeroVideoWidth),
		HeroVideoHeight: orDimension(row.HeroVideoHeight, FallbackAbout.HeroVideoHeight),
		UseLegalContent: row.UseLegalContent,
		Title:           orText(row.Title, FallbackAbout.Title),
		AboutText:       orText(row.AboutText, FallbackAbout.AboutText),
	}
}

func (r *Resolver) Legal(ctx context.Context) Legal {
	row, err := r.content.GetLegal(ctx)
	if err != nil {
		log.Printf("Resolving legal content from fallback: %v", err)
		return FallbackLegal
	}

	return Legal{
		Title:             orText(row.Title, FallbackLegal.Title),
		TrademarkText:     orText(row.TrademarkText, FallbackLegal.TrademarkText),
		TrademarkLinkText: orText(row.TrademarkLinkText, FallbackLegal.TrademarkLinkText),
		TrademarkURL:      orText(row.TrademarkURL, FallbackLegal.TrademarkURL),
		CopyrightText:     orText(row.CopyrightText, FallbackLegal.CopyrightText),
		RightsText:        orText(row.RightsText, FallbackLegal.RightsText),
	}
}

// Contact is the social links and booking details shown in the contact
// modal. Links and booking degrade independently: a failed link fetch still
// lets booking render, and vice versa.
type Contact struct {
	SocialLinks []models.SocialLink `json:"social_links"`
	Booking     *models.BookingInfo `json:"booking"`
}

func (r *Resolver) Contact(ctx context.Context) Contact {
	links, err := r.social.List(ctx, true)
	if err != nil {
		log.Printf("Resolving social links as empty: %v", err)
		links = nil
	}
	if links == nil {
		links = []models.SocialLink{}
	}

	booking, err := r.content.GetBooking(ctx)
	if err != nil {
		log.Printf("Resolving booking info as absent: %v", err)
		booking = nil
	}

	return Contact{SocialLinks: links, Booking: booking}
}

// UpcomingShows returns shows dated today or later, ascending. The date
// filter and ordering are applied in SQL so the page never re-sorts.
func (r *Resolver) UpcomingShows(ctx context.Context) []models.UpcomingShow {
	today := r.now().UTC().Format("2006-01-02")
	shows, err := r.shows.ListUpcoming(ctx, today)
	if err != nil {
		log.Printf("Resolving upcoming shows as empty: %v", err)
		return []models.UpcomingShow{}
	}
	if shows == nil {
		return []models.UpcomingShow{}
	}
	return shows
}

func (r *Resolver) PastShows(ctx context.Context) []models.PastShow {
	shows, err := r.shows.ListPast(ctx)
	if err != nil {
		log.Printf("Resolving past shows as empty: %v", err)
		return []models.PastShow{}
	}
	if shows == nil {
		return []models.PastShow{}
	}
	return shows
}

// Taglines returns the active rotation entries in display order.
func (r *Resolver) Taglines(ctx context.Context) []models.Tagline {
	taglines, err := r.taglines.List(ctx, true)
	if err != nil {
		log.Printf("Resolving taglines as empty: %v", err)
		return []models.Tagline{}
	}
	if taglines == nil {
		return []models.Tagline{}
	}
	return taglines
}
