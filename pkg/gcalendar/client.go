package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrInvalidDate is returned when an event date is not YYYY-MM-DD.
var ErrInvalidDate = errors.New("gcalendar: date must be YYYY-MM-DD")

// Client wraps the Google Calendar events service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile reads a credentials JSON file. tokenPath is only
// consulted for OAuth desktop credentials.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON accepts service account JSON, or installed-app
// OAuth JSON together with a saved token at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	if jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope); err == nil {
		return newClient(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	}

	oauthCfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}
	if tokenPath == "" {
		return nil, fmt.Errorf("oauth desktop credentials need a saved token file")
	}
	raw, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(raw, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}
	return newClient(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP builds a client on a pre-authorised HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	return newClient(ctx, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateDueDateEvent inserts an all-day event on ev.Date. The API treats the
// end date as exclusive, so the event ends on the following day.
func (c *Client) CreateDueDateEvent(ctx context.Context, ev DueDateEvent) (*Event, error) {
	day, err := time.Parse(dateLayout, strings.TrimSpace(ev.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, ev.Date)
	}

	calendarID := ev.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	body := &calendar.Event{
		Summary:      ev.Summary,
		Description:  ev.Description,
		Start:        &calendar.EventDateTime{Date: day.Format(dateLayout)},
		End:          &calendar.EventDateTime{Date: day.AddDate(0, 0, 1).Format(dateLayout)},
		Transparency: "transparent",
	}

	created, err := c.service.Events.Insert(calendarID, body).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HTMLLink: created.HtmlLink,
		Date:     day.Format(dateLayout),
	}, nil
}
