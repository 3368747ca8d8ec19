package handlers

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"phlegm-site/internal/models"
)

// In-memory repository fakes shared by the handler tests. They record the
// calls the handlers make so tests can assert on ordering and arguments.

var errBoom = errors.New("boom")

type fakeContentRepo struct {
	hero   *models.HeroContent
	banner *models.BannerContent

	heroUpdateID  string
	heroUpdateReq *models.UpdateHeroContentRequest
	updateErr     error
}

func (f *fakeContentRepo) GetHero(ctx context.Context) (*models.HeroContent, error) {
	if f.hero == nil {
		return nil, sql.ErrNoRows
	}
	return f.hero, nil
}

func (f *fakeContentRepo) UpdateHero(ctx context.Context, id string, req *models.UpdateHeroContentRequest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.heroUpdateID = id
	f.heroUpdateReq = req
	f.hero.VideoURL = req.VideoURL
	f.hero.Tagline = req.Tagline
	f.hero.UpdatedAt = time.Now()
	return nil
}

func (f *fakeContentRepo) GetBanner(ctx context.Context) (*models.BannerContent, error) {
	if f.banner == nil {
		return nil, sql.ErrNoRows
	}
	return f.banner, nil
}

func (f *fakeContentRepo) UpdateBanner(ctx context.Context, id string, req *models.UpdateBannerContentRequest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.banner.Enabled = req.Enabled
	f.banner.Text = req.Text
	f.banner.Subtext = req.Subtext
	f.banner.MediaURL = req.MediaURL
	f.banner.MediaType = req.MediaType
	f.banner.LinkURL = req.LinkURL
	f.banner.LinkText = req.LinkText
	return nil
}

func (f *fakeContentRepo) GetBio(ctx context.Context) (*models.BioContent, error) {
	return nil, sql.ErrNoRows
}
func (f *fakeContentRepo) UpdateBio(ctx context.Context, id string, req *models.UpdateBioContentRequest) error {
	return f.updateErr
}
func (f *fakeContentRepo) GetAbout(ctx context.Context) (*models.AboutContent, error) {
	return nil, sql.ErrNoRows
}
func (f *fakeContentRepo) UpdateAbout(ctx context.Context, id string, req *models.UpdateAboutContentRequest) error {
	return f.updateErr
}
func (f *fakeContentRepo) GetLegal(ctx context.Context) (*models.LegalContent, error) {
	return nil, sql.ErrNoRows
}
func (f *fakeContentRepo) UpdateLegal(ctx context.Context, id string, req *models.UpdateLegalContentRequest) error {
	return f.updateErr
}
func (f *fakeContentRepo) GetBooking(ctx context.Context) (*models.BookingInfo, error) {
	return nil, sql.ErrNoRows
}
func (f *fakeContentRepo) UpdateBooking(ctx context.Context, id string, req *models.UpdateBookingInfoRequest) error {
	return f.updateErr
}

type fakeSocialRepo struct {
	links map[string]*models.SocialLink
	calls []string

	listErr        error
	clearErr       error
	markPrimaryErr error
}

func newFakeSocialRepo(links ...*models.SocialLink) *fakeSocialRepo {
	f := &fakeSocialRepo{links: map[string]*models.SocialLink{}}
	for _, l := range links {
		f.links[l.ID] = l
	}
	return f
}

func (f *fakeSocialRepo) primaryCount() int {
	n := 0
	for _, l := range f.links {
		if l.IsPrimary {
			n++
		}
	}
	return n
}

func (f *fakeSocialRepo) List(ctx context.Context, activeOnly bool) ([]models.SocialLink, error) {
	f.calls = append(f.calls, "List")
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.SocialLink{}
	for _, l := range f.links {
		if activeOnly && !l.IsActive {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeSocialRepo) GetByID(ctx context.Context, id string) (*models.SocialLink, error) {
	f.calls = append(f.calls, "GetByID")
	l, ok := f.links[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *l
	return &cp, nil
}

func (f *fakeSocialRepo) Create(ctx context.Context, link *models.SocialLink) error {
	f.calls = append(f.calls, "Create")
	link.CreatedAt = time.Now()
	link.UpdatedAt = link.CreatedAt
	f.links[link.ID] = link
	return nil
}

func (f *fakeSocialRepo) Update(ctx context.Context, id string, req *models.UpdateSocialLinkRequest) error {
	f.calls = append(f.calls, "Update")
	l, ok := f.links[id]
	if !ok {
		return sql.ErrNoRows
	}
	if req.Platform != nil {
		l.Platform = *req.Platform
	}
	if req.URL != nil {
		l.URL = *req.URL
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		l.SortOrder = *req.SortOrder
	}
	return nil
}

func (f *fakeSocialRepo) Delete(ctx context.Context, id string) error {
	f.calls = append(f.calls, "Delete")
	if _, ok := f.links[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.links, id)
	return nil
}

func (f *fakeSocialRepo) ClearPrimary(ctx context.Context) error {
	f.calls = append(f.calls, "ClearPrimary")
	if f.clearErr != nil {
		return f.clearErr
	}
	for _, l := range f.links {
		l.IsPrimary = false
	}
	return nil
}

func (f *fakeSocialRepo) MarkPrimary(ctx context.Context, id string) error {
	f.calls = append(f.calls, "MarkPrimary")
	if f.markPrimaryErr != nil {
		return f.markPrimaryErr
	}
	l, ok := f.links[id]
	if !ok {
		return sql.ErrNoRows
	}
	l.IsPrimary = true
	return nil
}

type fakeTaglineRepo struct {
	taglines map[string]*models.Tagline
}

func newFakeTaglineRepo(taglines ...*models.Tagline) *fakeTaglineRepo {
	f := &fakeTaglineRepo{taglines: map[string]*models.Tagline{}}
	for _, tl := range taglines {
		f.taglines[tl.ID] = tl
	}
	return f
}

func (f *fakeTaglineRepo) List(ctx context.Context, activeOnly bool) ([]models.Tagline, error) {
	out := []models.Tagline{}
	for _, tl := range f.taglines {
		if activeOnly && !tl.IsActive {
			continue
		}
		out = append(out, *tl)
	}
	return out, nil
}

func (f *fakeTaglineRepo) GetByID(ctx context.Context, id string) (*models.Tagline, error) {
	tl, ok := f.taglines[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *tl
	return &cp, nil
}

func (f *fakeTaglineRepo) Create(ctx context.Context, tagline *models.Tagline) error {
	f.taglines[tagline.ID] = tagline
	return nil
}

func (f *fakeTaglineRepo) Update(ctx context.Context, id string, req *models.UpdateTaglineRequest) error {
	tl, ok := f.taglines[id]
	if !ok {
		return sql.ErrNoRows
	}
	if req.Text != nil {
		tl.Text = *req.Text
	}
	if req.SortOrder != nil {
		tl.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		tl.IsActive = *req.IsActive
	}
	return nil
}

func (f *fakeTaglineRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.taglines[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.taglines, id)
	return nil
}

type fakeShowRepo struct {
	upcoming map[string]*models.UpcomingShow
	past     map[string]*models.PastShow
}

func newFakeShowRepo() *fakeShowRepo {
	return &fakeShowRepo{
		upcoming: map[string]*models.UpcomingShow{},
		past:     map[string]*models.PastShow{},
	}
}

func (f *fakeShowRepo) ListUpcoming(ctx context.Context, fromDate string) ([]models.UpcomingShow, error) {
	out := []models.UpcomingShow{}
	for _, s := range f.upcoming {
		if s.ShowDate >= fromDate {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeShowRepo) ListAllUpcoming(ctx context.Context) ([]models.UpcomingShow, error) {
	out := []models.UpcomingShow{}
	for _, s := range f.upcoming {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeShowRepo) GetUpcomingByID(ctx context.Context, id string) (*models.UpcomingShow, error) {
	s, ok := f.upcoming[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShowRepo) CreateUpcoming(ctx context.Context, show *models.UpcomingShow) error {
	show.CreatedAt = time.Now()
	show.UpdatedAt = show.CreatedAt
	f.upcoming[show.ID] = show
	return nil
}

func (f *fakeShowRepo) UpdateUpcoming(ctx context.Context, id string, req *models.UpdateUpcomingShowRequest) error {
	s, ok := f.upcoming[id]
	if !ok {
		return sql.ErrNoRows
	}
	if req.ShowDate != nil {
		s.ShowDate = *req.ShowDate
	}
	if req.Venue != nil {
		s.Venue = *req.Venue
	}
	if req.City != nil {
		s.City = *req.City
	}
	return nil
}

func (f *fakeShowRepo) DeleteUpcoming(ctx context.Context, id string) error {
	if _, ok := f.upcoming[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.upcoming, id)
	return nil
}

func (f *fakeShowRepo) ListPast(ctx context.Context) ([]models.PastShow, error) {
	out := []models.PastShow{}
	for _, s := range f.past {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeShowRepo) GetPastByID(ctx context.Context, id string) (*models.PastShow, error) {
	s, ok := f.past[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShowRepo) CreatePast(ctx context.Context, show *models.PastShow) error {
	show.CreatedAt = time.Now()
	show.UpdatedAt = show.CreatedAt
	f.past[show.ID] = show
	return nil
}

func (f *fakeShowRepo) UpdatePast(ctx context.Context, id string, req *models.UpdatePastShowRequest) error {
	s, ok := f.past[id]
	if !ok {
		return sql.ErrNoRows
	}
	if req.Venue != nil {
		s.Venue = *req.Venue
	}
	if req.ImageURLs != nil {
		s.ImageURLs = *req.ImageURLs
	}
	return nil
}

func (f *fakeShowRepo) DeletePast(ctx context.Context, id string) error {
	if _, ok := f.past[id]; !ok {
		return sql.ErrNoRows
	}
	delete(f.past, id)
	return nil
}
