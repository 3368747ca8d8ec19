package content

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"phlegm-site/internal/models"
)

var errDown = errors.New("connection refused")

type stubContentRepo struct {
	hero    *models.HeroContent
	banner  *models.BannerContent
	bio     *models.BioContent
	about   *models.AboutContent
	legal   *models.LegalContent
	booking *models.BookingInfo
	err     error
}

func (s *stubContentRepo) GetHero(ctx context.Context) (*models.HeroContent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.hero, nil
}

func (s *stubContentRepo) GetBanner(ctx context.Context) (*models.BannerContent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.banner, nil
}

func (s *stubContentRepo) GetBio(ctx context.Context) (*models.BioContent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bio, nil
}

func (s *stubContentRepo) GetAbout(ctx context.Context) (*models.AboutContent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.about, nil
}

func (s *stubContentRepo) GetLegal(ctx context.Context) (*models.LegalContent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.legal, nil
}

func (s *stubContentRepo) GetBooking(ctx context.Context) (*models.BookingInfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.booking, nil
}

func (s *stubContentRepo) UpdateHero(ctx context.Context, id string, req *models.UpdateHeroContentRequest) error {
	return nil
}
func (s *stubContentRepo) UpdateBanner(ctx context.Context, id string, req *models.UpdateBannerContentRequest) error {
	return nil
}
func (s *stubContentRepo) UpdateBio(ctx context.Context, id string, req *models.UpdateBioContentRequest) error {
	return nil
}
func (s *stubContentRepo) UpdateAbout(ctx context.Context, id string, req *models.UpdateAboutContentRequest) error {
	return nil
}
func (s *stubContentRepo) UpdateLegal(ctx context.Context, id string, req *models.UpdateLegalContentRequest) error {
	return nil
}
func (s *stubContentRepo) UpdateBooking(ctx context.Context, id string, req *models.UpdateBookingInfoRequest) error {
	return nil
}

type stubShowRepo struct {
	upcoming []models.UpcomingShow
	past     []models.PastShow
	fromDate string
	err      error
}

func (s *stubShowRepo) ListUpcoming(ctx context.Context, fromDate string) ([]models.UpcomingShow, error) {
	s.fromDate = fromDate
	if s.err != nil {
		return nil, s.err
	}
	return s.upcoming, nil
}

func (s *stubShowRepo) ListAllUpcoming(ctx context.Context) ([]models.UpcomingShow, error) {
	return s.upcoming, s.err
}

func (s *stubShowRepo) ListPast(ctx context.Context) ([]models.PastShow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.past, nil
}

func (s *stubShowRepo) GetUpcomingByID(ctx context.Context, id string) (*models.UpcomingShow, error) {
	return nil, s.err
}
func (s *stubShowRepo) CreateUpcoming(ctx context.Context, show *models.UpcomingShow) error {
	return s.err
}
func (s *stubShowRepo) UpdateUpcoming(ctx context.Context, id string, req *models.UpdateUpcomingShowRequest) error {
	return s.err
}
func (s *stubShowRepo) DeleteUpcoming(ctx context.Context, id string) error { return s.err }
func (s *stubShowRepo) GetPastByID(ctx context.Context, id string) (*models.PastShow, error) {
	return nil, s.err
}
func (s *stubShowRepo) CreatePast(ctx context.Context, show *models.PastShow) error { return s.err }
func (s *stubShowRepo) UpdatePast(ctx context.Context, id string, req *models.UpdatePastShowRequest) error {
	return s.err
}
func (s *stubShowRepo) DeletePast(ctx context.Context, id string) error { return s.err }

type stubSocialRepo struct {
	links []models.SocialLink
	err   error
}

func (s *stubSocialRepo) List(ctx context.Context, activeOnly bool) ([]models.SocialLink, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.links, nil
}

func (s *stubSocialRepo) GetByID(ctx context.Context, id string) (*models.SocialLink, error) {
	return nil, s.err
}
func (s *stubSocialRepo) Create(ctx context.Context, link *models.SocialLink) error { return s.err }
func (s *stubSocialRepo) Update(ctx context.Context, id string, req *models.UpdateSocialLinkRequest) error {
	return s.err
}
func (s *stubSocialRepo) Delete(ctx context.Context, id string) error { return s.err }
func (s *stubSocialRepo) ClearPrimary(ctx context.Context) error      { return s.err }
func (s *stubSocialRepo) MarkPrimary(ctx context.Context, id string) error {
	return s.err
}

type stubTaglineRepo struct {
	taglines []models.Tagline
	err      error
}

func (s *stubTaglineRepo) List(ctx context.Context, activeOnly bool) ([]models.Tagline, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.taglines, nil
}

func (s *stubTaglineRepo) GetByID(ctx context.Context, id string) (*models.Tagline, error) {
	return nil, s.err
}
func (s *stubTaglineRepo) Create(ctx context.Context, tagline *models.Tagline) error { return s.err }
func (s *stubTaglineRepo) Update(ctx context.Context, id string, req *models.UpdateTaglineRequest) error {
	return s.err
}
func (s *stubTaglineRepo) Delete(ctx context.Context, id string) error { return s.err }

func newTestResolver(content *stubContentRepo, shows *stubShowRepo, social *stubSocialRepo, taglines *stubTaglineRepo) *Resolver {
	if content == nil {
		content = &stubContentRepo{}
	}
	if shows == nil {
		shows = &stubShowRepo{}
	}
	if social == nil {
		social = &stubSocialRepo{}
	}
	if taglines == nil {
		taglines = &stubTaglineRepo{}
	}
	return NewResolver(content, shows, social, taglines)
}

func TestResolveFallsBackWhenStoreUnreachable(t *testing.T) {
	r := newTestResolver(
		&stubContentRepo{err: errDown},
		&stubShowRepo{err: errDown},
		&stubSocialRepo{err: errDown},
		&stubTaglineRepo{err: errDown},
	)
	ctx := context.Background()

	if got := r.Hero(ctx); !reflect.DeepEqual(got, FallbackHero) {
		t.Fatalf("hero: got %+v, want fallback %+v", got, FallbackHero)
	}
	if got := r.Banner(ctx); !reflect.DeepEqual(got, FallbackBanner) {
		t.Fatalf("banner: got %+v, want fallback %+v", got, FallbackBanner)
	}
	if got := r.Bio(ctx); !reflect.DeepEqual(got, FallbackBio) {
		t.Fatalf("bio: got %+v, want fallback %+v", got, FallbackBio)
	}
	if got := r.About(ctx); !reflect.DeepEqual(got, FallbackAbout) {
		t.Fatalf("about: got %+v, want fallback %+v", got, FallbackAbout)
	}
	if got := r.Legal(ctx); !reflect.DeepEqual(got, FallbackLegal) {
		t.Fatalf("legal: got %+v, want fallback %+v", got, FallbackLegal)
	}

	contact := r.Contact(ctx)
	if len(contact.SocialLinks) != 0 || contact.Booking != nil {
		t.Fatalf("contact: expected empty links and nil booking, got %+v", contact)
	}
	if got := r.UpcomingShows(ctx); len(got) != 0 {
		t.Fatalf("upcoming: expected empty, got %+v", got)
	}
	if got := r.PastShows(ctx); len(got) != 0 {
		t.Fatalf("past: expected empty, got %+v", got)
	}
	if got := r.Taglines(ctx); len(got) != 0 {
		t.Fatalf("taglines: expected empty, got %+v", got)
	}
}

func TestHeroMergeKeepsStoredFillsMissing(t *testing.T) {
	video := "https://cdn.example.com/hero.mp4"
	r := newTestResolver(&stubContentRepo{
		hero: &models.HeroContent{ID: "1", VideoURL: &video, Tagline: ""},
	}, nil, nil, nil)

	got := r.Hero(context.Background())
	if got.VideoURL == nil || *got.VideoURL != video {
		t.Fatalf("expected stored video url, got %v", got.VideoURL)
	}
	if got.Tagline != FallbackHero.Tagline {
		t.Fatalf("expected fallback tagline %q, got %q", FallbackHero.Tagline, got.Tagline)
	}
}

func TestBioMergeTreatsFalsyFieldsAsAbsent(t *testing.T) {
	r := newTestResolver(&stubContentRepo{
		bio: &models.BioContent{
			ID:              "1",
			HeroVideoURL:    strPtr(""),
			HeroVideoWidth:  0,
			HeroVideoHeight: 900,
			Title:           "PHLEGM LIVE",
			Tagline:         "",
			SpeaksInItems:   []string{},
		},
	}, nil, nil, nil)

	got := r.Bio(context.Background())
	if !reflect.DeepEqual(got.HeroVideoURL, FallbackBio.HeroVideoURL) {
		t.Fatalf("empty stored url should fall back, got %v", got.HeroVideoURL)
	}
	if got.HeroVideoWidth != FallbackBio.HeroVideoWidth {
		t.Fatalf("zero width should fall back to %d, got %d", FallbackBio.HeroVideoWidth, got.HeroVideoWidth)
	}
	if got.HeroVideoHeight != 900 {
		t.Fatalf("stored height should win, got %d", got.HeroVideoHeight)
	}
	if got.Title != "PHLEGM LIVE" {
		t.Fatalf("stored title should win, got %q", got.Title)
	}
	if got.Tagline != FallbackBio.Tagline {
		t.Fatalf("empty tagline should fall back, got %q", got.Tagline)
	}
}

func TestResolveTwiceYieldsIdenticalValues(t *testing.T) {
	sub := "Out everywhere"
	repo := &stubContentRepo{
		hero:   &models.HeroContent{ID: "1", Tagline: "Pacific Northwest"},
		banner: &models.BannerContent{ID: "2", Enabled: true, Text: "TOUR DATES", Subtext: &sub},
		bio:    &models.BioContent{ID: "3", Title: "PHLEGM", HeroVideoWidth: 576, HeroVideoHeight: 758},
		about:  &models.AboutContent{ID: "4", UseLegalContent: true},
		legal:  &models.LegalContent{ID: "5", Title: "PHLEGM®"},
	}
	r := newTestResolver(repo, nil, nil, nil)
	ctx := context.Background()

	first := []any{r.Hero(ctx), r.Banner(ctx), r.Bio(ctx), r.About(ctx), r.Legal(ctx)}
	second := []any{r.Hero(ctx), r.Banner(ctx), r.Bio(ctx), r.About(ctx), r.Legal(ctx)}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolving twice with no write changed the result:\n%+v\n%+v", first, second)
	}
}

func TestBannerDisabledShortCircuits(t *testing.T) {
	sub := "still stored"
	r := newTestResolver(&stubContentRepo{
		banner: &models.BannerContent{
			ID:      "1",
			Enabled: false,
			Text:    "OLD ANNOUNCEMENT",
			Subtext: &sub,
		},
	}, nil, nil, nil)

	got := r.Banner(context.Background())
	want := Banner{Display: false}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("disabled banner should carry no content, got %+v", got)
	}
}

func TestContactDegradesIndependently(t *testing.T) {
	email := "booking@phlegm.music"
	booking := &models.BookingInfo{ID: "b1", BookingEmail: &email}

	r := newTestResolver(
		&stubContentRepo{booking: booking},
		nil,
		&stubSocialRepo{err: errDown},
		nil,
	)
	got := r.Contact(context.Background())
	if len(got.SocialLinks) != 0 {
		t.Fatalf("expected empty links, got %+v", got.SocialLinks)
	}
	if got.Booking == nil || got.Booking.BookingEmail == nil || *got.Booking.BookingEmail != email {
		t.Fatalf("booking should survive a link failure, got %+v", got.Booking)
	}

	links := []models.SocialLink{{ID: "s1", Platform: "Spotify", URL: "https://open.spotify.com/artist/x", IsActive: true}}
	r = newTestResolver(
		&stubContentRepo{err: errDown},
		nil,
		&stubSocialRepo{links: links},
		nil,
	)
	got = r.Contact(context.Background())
	if len(got.SocialLinks) != 1 {
		t.Fatalf("links should survive a booking failure, got %+v", got.SocialLinks)
	}
	if got.Booking != nil {
		t.Fatalf("expected nil booking, got %+v", got.Booking)
	}
}

func TestUpcomingShowsFilterFromToday(t *testing.T) {
	shows := &stubShowRepo{upcoming: []models.UpcomingShow{
		{ID: "1", ShowDate: "2099-01-02", Venue: "The Crocodile", City: "Seattle"},
	}}
	r := newTestResolver(nil, shows, nil, nil)
	r.now = func() time.Time {
		return time.Date(2099, 1, 1, 23, 30, 0, 0, time.UTC)
	}

	got := r.UpcomingShows(context.Background())
	if shows.fromDate != "2099-01-01" {
		t.Fatalf("expected filter from 2099-01-01, got %q", shows.fromDate)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected shows: %+v", got)
	}
}
