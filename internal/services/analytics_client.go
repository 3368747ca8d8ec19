package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrAnalyticsNotConfigured distinguishes a missing API key from a transient
// upstream failure.
var ErrAnalyticsNotConfigured = errors.New("analytics not configured")

// AnalyticsAPIError carries the upstream status so the proxy can propagate it.
type AnalyticsAPIError struct {
	Status int
	Body   string
}

func (e *AnalyticsAPIError) Error() string {
	return fmt.Sprintf("analytics API error: status=%d body=%s", e.Status, e.Body)
}

// AnalyticsClient proxies the hosted analytics API so the bearer token never
// reaches the browser.
type AnalyticsClient struct {
	baseURL    string
	apiKey     string
	siteID     string
	httpClient *http.Client
}

func NewAnalyticsClient(baseURL, apiKey, siteID string) *AnalyticsClient {
	return &AnalyticsClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		siteID:     siteID,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *AnalyticsClient) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

// StatsReport bundles the dashboard view for one period. The sub-query
// payloads are passed through untouched.
type StatsReport struct {
	Aggregate    json.RawMessage `json:"aggregate"`
	TopSources   json.RawMessage `json:"top_sources"`
	TopPages     json.RawMessage `json:"top_pages"`
	Events       json.RawMessage `json:"events"`
	SocialClicks json.RawMessage `json:"social_clicks"`
	Period       string          `json:"period"`
}

// Stats fetches the aggregate metrics plus the top-source, top-page and
// custom-event breakdowns. The aggregate is load-bearing and its failure
// propagates; a failed breakdown degrades to an empty result list.
func (c *AnalyticsClient) Stats(ctx context.Context, period string) (*StatsReport, error) {
	if c.apiKey == "" {
		return nil, ErrAnalyticsNotConfigured
	}

	aggregate, err := c.fetchResults(ctx, "/aggregate", url.Values{
		"site_id": {c.siteID},
		"period":  {period},
		"metrics": {"visitors,pageviews,bounce_rate,visit_duration"},
	})
	if err != nil {
		return nil, err
	}

	report := &StatsReport{
		Aggregate:    aggregate,
		TopSources:   c.breakdown(ctx, period, "visit:source", "5", ""),
		TopPages:     c.breakdown(ctx, period, "event:page", "5", ""),
		Events:       c.breakdown(ctx, period, "event:name", "10", ""),
		SocialClicks: c.breakdown(ctx, period, "event:props:platform", "10", "event:name==Social Click"),
		Period:       period,
	}

	return report, nil
}

func (c *AnalyticsClient) breakdown(ctx context.Context, period, property, limit, filters string) json.RawMessage {
	params := url.Values{
		"site_id":  {c.siteID},
		"period":   {period},
		"property": {property},
		"limit":    {limit},
	}
	if filters != "" {
		params.Set("filters", filters)
	}

	results, err := c.fetchResults(ctx, "/breakdown", params)
	if err != nil {
		log.Printf("Analytics breakdown %s failed: %v", property, err)
		return json.RawMessage("[]")
	}
	return results
}

func (c *AnalyticsClient) fetchResults(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &AnalyticsAPIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var out struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to decode analytics response: %w", err)
	}

	return out.Results, nil
}
