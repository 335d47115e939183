package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const dateLayout = "2006-01-02"

var ErrInvalidWindow = errors.New("gcalendar: time_max must be after time_min")

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientWithAPIKey creates a Calendar client for public calendars.
func NewClientWithAPIKey(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("google calendar API key is required")
	}
	svc, err := calendar.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from Service Account JSON,
// or from installed-app OAuth credentials plus a stored token at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil || oauthCreds.Installed.ClientID == "" {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token found at %s", tokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token: %w", jsonErr)
	}

	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ListHolidays returns the all-day entries overlapping [TimeMin, TimeMax), ordered by date.
func (c *Client) ListHolidays(ctx context.Context, req ListHolidaysRequest) ([]Holiday, error) {
	if !req.TimeMax.After(req.TimeMin) {
		return nil, ErrInvalidWindow
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultHolidayCalendarID
	}
	loc := req.Location
	if loc == nil {
		loc = req.TimeMin.Location()
	}

	call := c.service.Events.List(calendarID).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	var holidays []Holiday
	err := call.Pages(ctx, func(page *calendar.Events) error {
		for _, item := range page.Items {
			h, ok := toHoliday(item, loc)
			if ok {
				holidays = append(holidays, h)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Start.Before(holidays[j].Start)
	})
	return holidays, nil
}

func toHoliday(item *calendar.Event, loc *time.Location) (Holiday, bool) {
	if item == nil || item.Start == nil || item.Status == "cancelled" {
		return Holiday{}, false
	}

	start, ok := eventTime(item.Start, loc)
	if !ok {
		return Holiday{}, false
	}
	end := start.AddDate(0, 0, 1)
	if item.End != nil {
		if e, ok := eventTime(item.End, loc); ok && e.After(start) {
			end = e
		}
	}

	return Holiday{
		ID:          item.Id,
		Name:        item.Summary,
		Description: item.Description,
		Start:       start,
		End:         end,
	}, true
}

func eventTime(dt *calendar.EventDateTime, loc *time.Location) (time.Time, bool) {
	if dt.Date != "" {
		t, err := time.ParseInLocation(dateLayout, dt.Date, loc)
		return t, err == nil
	}
	if dt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, dt.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return t.In(loc), true
	}
	return time.Time{}, false
}
