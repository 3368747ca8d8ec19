// Package content implements the public read path: every section is resolved
// by merging the stored row with a compile-time fallback, field by field, so
// a page never renders with missing required fields.
package content

// Resolved view values returned to the public site. They carry no row ids or
// timestamps; the public pages have no use for them.

type Hero struct {
	VideoURL *string `json:"video_url"`
	Tagline  string  `json:"tagline"`
}

type Banner struct {
	// Display is the render decision: false whenever the banner is disabled.
	Display   bool    `json:"display"`
	Text      string  `json:"text"`
	Subtext   *string `json:"subtext"`
	MediaURL  *string `json:"media_url"`
	MediaType *string `json:"media_type"`
	LinkURL   *string `json:"link_url"`
	LinkText  *string `json:"link_text"`
}

type Bio struct {
	HeroVideoURL    *string  `json:"hero_video_url"`
	HeroVideoWidth  int      `json:"hero_video_width"`
	HeroVideoHeight int      `json:"hero_video_height"`
	Title           string   `json:"title"`
	Tagline         string   `json:"tagline"`
	BioText         string   `json:"bio_text"`
	SpeaksInItems   []string `json:"speaks_in_items"`
	ClosingText     string   `json:"closing_text"`
}

type About struct {
	HeroVideoURL    *string `json:"hero_video_url"`
	HeroVideoWidth  int     `json:"hero_video_width"`
	HeroVideoHeight int     `json:"hero_video_height"`
	UseLegalContent bool    `json:"use_legal_content"`
	Title           string  `json:"title"`
	AboutText       string  `json:"about_text"`
}

type Legal struct {
	Title             string `json:"title"`
	TrademarkText     string `json:"trademark_text"`
	TrademarkLinkText string `json:"trademark_link_text"`
	TrademarkURL      string `json:"trademark_url"`
	CopyrightText     string `json:"copyright_text"`
	RightsText        string `json:"rights_text"`
}

// Compile-time fallbacks. These render when the store is empty or
// unreachable, so the copy here is real site copy, not placeholders.

func strPtr(s string) *string { return &s }

var FallbackHero = Hero{
	VideoURL: nil,
	Tagline:  "Seattle Underground",
}

var FallbackBanner = Banner{
	Display:  true,
	Text:     `NEW SINGLE "STATIC DREAMS" OUT NOW`,
	Subtext:  strPtr("Available on all platforms"),
	LinkURL:  strPtr("https://open.spotify.com/artist/3brB4yhi4ZJtxQkbZX0wkk"),
	LinkText: strPtr("LISTEN NOW"),
}

var FallbackBio = Bio{
	HeroVideoURL:    strPtr("https://chromasmith-cdn.b-cdn.net/phleghm-website/hero/Phlegm_MeVme.mp4.mp4"),
	HeroVideoWidth:  576,
	HeroVideoHeight: 758,
	Title:           "PHLEGM",
	Tagline:         "Rain. Static. The space between.",
	BioText:         "",
	SpeaksInItems:   []string{},
	ClosingText:     "",
}

var FallbackAbout = About{
	HeroVideoURL:    nil,
	HeroVideoWidth:  576,
	HeroVideoHeight: 758,
	UseLegalContent: true,
	Title:           "PHLEGM",
	AboutText:       "",
}

var FallbackLegal = Legal{
	Title:             "PHLEGM®",
	TrademarkText:     "PHLEGM is a registered trademark under",
	TrademarkLinkText: "USPTO",
	TrademarkURL:      "https://my.uspto.gov/",
	CopyrightText:     "All content on this website, including music, images, and videos, is owned by PHLEGM and may not be reproduced without permission.",
	RightsText:        "All rights reserved.",
}

// Merge helpers. The policy is "fallback if falsy": an explicit empty string,
// empty array or zero dimension stored in the row is treated as absent and
// replaced by the fallback. The admin surface shows the raw row instead, so
// operators still see what is actually stored.

func orText(remote, fallback string) string {
	if remote != "" {
		return remote
	}
	return fallback
}

func orTextPtr(remote, fallback *string) *string {
	if remote != nil && *remote != "" {
		return remote
	}
	return fallback
}

func orDimension(remote, fallback int) int {
	if remote > 0 {
		return remote
	}
	return fallback
}

func orList(remote, fallback []string) []string {
	if len(remote) > 0 {
		return remote
	}
	return fallback
}
