package worldtime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://worldtimeapi.org/api"
	DefaultTimeout = 5 * time.Second
)

// Config configures the WorldTimeAPI client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
	Clock     Clock
}

// Client is the WorldTimeAPI client. Replies are cached per path.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
}

// New creates a client. Empty fields take the package defaults.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      NewCache(cfg.CacheSize, cfg.CacheTTL, cfg.Clock),
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func (c *Client) WithHTTPClient(httpClient *http.Client) *Client {
	c.httpClient = httpClient
	return c
}

// Cache exposes the reply cache.
func (c *Client) Cache() *Cache {
	return c.cache
}

// TimeInfo returns the zone data for timezone.
func (c *Client) TimeInfo(ctx context.Context, timezone string) (TimeInfo, error) {
	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		return TimeInfo{}, ErrEmptyTimezone
	}

	var info TimeInfo
	if _, err := c.get(ctx, "/timezone/"+escapeZone(timezone), &info); err != nil {
		return TimeInfo{}, err
	}
	return info, nil
}

// CurrentTime returns the current wall clock of timezone. A cached reply is
// advanced by its age.
func (c *Client) CurrentTime(ctx context.Context, timezone string) (time.Time, error) {
	timezone = strings.TrimSpace(timezone)
	if timezone == "" {
		return time.Time{}, ErrEmptyTimezone
	}

	var info TimeInfo
	age, err := c.get(ctx, "/timezone/"+escapeZone(timezone), &info)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, info.Datetime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: datetime %q", ErrUnexpectedReply, info.Datetime)
	}
	if loc, locErr := time.LoadLocation(timezone); locErr == nil {
		t = t.In(loc)
	}
	return t.Add(age), nil
}

// LocalTimezone detects the zone of the caller's public IP.
func (c *Client) LocalTimezone(ctx context.Context) (string, error) {
	var info IPInfo
	if _, err := c.get(ctx, "/ip", &info); err != nil {
		return "", err
	}
	if info.Timezone == "" {
		return "", fmt.Errorf("%w: no timezone in /ip reply", ErrUnexpectedReply)
	}
	return info.Timezone, nil
}

// Timezones lists every zone known to the API.
func (c *Client) Timezones(ctx context.Context) ([]string, error) {
	var zones []string
	if _, err := c.get(ctx, "/timezone", &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (c *Client) get(ctx context.Context, path string, out any) (time.Duration, error) {
	if body, age, ok := c.cache.Get(path); ok {
		if err := json.Unmarshal(body, out); err == nil {
			return age, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call WorldTimeAPI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if jsonErr := json.Unmarshal(body, &errResp); jsonErr == nil && errResp.Error != "" {
			return 0, fmt.Errorf("worldtime API error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return 0, fmt.Errorf("worldtime API error: %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	c.cache.Set(path, body)
	return 0, nil
}

func escapeZone(zone string) string {
	parts := strings.Split(zone, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
