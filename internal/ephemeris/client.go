package ephemeris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"fateshift/pkg/models"
)

// Planets queried for a full analysis, in display order.
var DefaultPlanets = []string{
	"Sun", "Moon", "Mercury", "Venus", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
}

// Client talks to the external Swiss-Ephemeris HTTP service. The service
// is an opaque oracle: no position math happens on this side of the wire,
// and the timeline core never depends on it.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Limiter *rate.Limiter
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 12 * time.Second},
		// keep a shared ephemeris deployment comfortable
		Limiter: rate.NewLimiter(rate.Limit(5), 10),
	}
}

// Query is the wire request: decimal hour, tz optional (hour is treated
// as UT when tz is omitted).
type Query struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Day   int     `json:"day"`
	Hour  float64 `json:"hour"`
	TZ    string  `json:"tz,omitempty"`
}

// Planet fetches the position of a single body.
func (c *Client) Planet(ctx context.Context, name string, q Query) (*models.PlanetPosition, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate wait: %w", err)
		}
	}

	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("marshal query: %w", err)
	}

	endpoint := c.BaseURL + "/planet/" + url.PathEscape(strings.ToLower(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ephemeris %s: %w", name, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ephemeris %s: status %d: %s", name, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var pos models.PlanetPosition
	if err := json.Unmarshal(data, &pos); err != nil {
		return nil, fmt.Errorf("decode position: %w", err)
	}
	return &pos, nil
}

// Positions fetches every named planet, skipping bodies the service
// cannot answer for. One broken body should not sink the whole analysis.
func (c *Client) Positions(ctx context.Context, names []string, q Query) map[string]models.PlanetPosition {
	out := make(map[string]models.PlanetPosition, len(names))
	for _, name := range names {
		pos, err := c.Planet(ctx, name, q)
		if err != nil {
			log.Printf("[ephemeris] %s: %v", name, err)
			continue
		}
		out[name] = *pos
	}
	return out
}

// Health checks the service's /health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ephemeris health: status %d", resp.StatusCode)
	}
	return nil
}
