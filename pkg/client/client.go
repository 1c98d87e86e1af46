// Package client is a small Go client for the lamp ceremony API, for use
// by display integrations and end-to-end tooling.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"lampceremony/internal/domain"
)

// Client talks to a lamp ceremony server over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the server at baseURL. A nil httpClient falls
// back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// ExistsResult reports whether an event ID or host password is taken.
type ExistsResult struct {
	Exists bool `json:"exists"`
}

// CreateEventRequest mirrors the body of POST /api/events.
type CreateEventRequest struct {
	EventID      string `json:"eventId"`
	FirstHeader  string `json:"firstHeader"`
	SecondHeader string `json:"secondHeader"`
	Password     string `json:"password"`
	SoundURL     string `json:"soundUrl"`
	HostEmail    string `json:"hostEmail,omitempty"`
}

// CreateEventResult is the body of a successful event creation.
type CreateEventResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	EventID string `json:"event_id"`
}

// AddGuestRequest mirrors the body of POST /api/events/{eventID}/guests.
type AddGuestRequest struct {
	GuestTitle string `json:"guestTitle"`
	GuestName  string `json:"guestName"`
	ImageURL   string `json:"imageUrl"`
}

// AddGuestResult is the body of a successful guest registration.
type AddGuestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	GuestID int64  `json:"guest_id"`
	EventID string `json:"event_id"`
}

// ActionResult carries the authoritative post-transition counters.
type ActionResult struct {
	EventID      string `json:"eventId"`
	CurrentLight int    `json:"current_light"`
	CurrentGuest int    `json:"current_guest"`
}

// StartResult is the body of a successful start-flag write.
type StartResult struct {
	EventID string `json:"eventId"`
	IsStart bool   `json:"isStart"`
	Updated bool   `json:"updated"`
}

// CheckEvent reports whether the given 8-digit event ID exists.
func (c *Client) CheckEvent(ctx context.Context, eventID string) (bool, error) {
	var out ExistsResult
	if err := c.do(ctx, http.MethodGet, "/check-event/"+eventID, nil, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// CheckPassword reports whether the given host password is already taken.
func (c *Client) CheckPassword(ctx context.Context, password string) (bool, error) {
	var out ExistsResult
	if err := c.do(ctx, http.MethodGet, "/check-password/"+password, nil, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// CreateEvent creates a new ceremony event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*CreateEventResult, error) {
	var out CreateEventResult
	if err := c.do(ctx, http.MethodPost, "/api/events", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddGuest appends a guest to the end of the event's roster.
func (c *Client) AddGuest(ctx context.Context, eventID string, req AddGuestRequest) (*AddGuestResult, error) {
	var out AddGuestResult
	if err := c.do(ctx, http.MethodPost, "/api/events/"+eventID+"/guests", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventInfo resolves a join token (8-char event ID or 9-char host
// password) into the full event snapshot.
func (c *Client) EventInfo(ctx context.Context, token string) (*domain.EventInfo, error) {
	var out domain.EventInfo
	if err := c.do(ctx, http.MethodGet, "/api/event-info/"+token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// State fetches the lightweight poll snapshot for an event.
func (c *Client) State(ctx context.Context, eventID string) (domain.CeremonyState, error) {
	var out domain.CeremonyState
	if err := c.do(ctx, http.MethodGet, "/api/events/"+eventID+"/state", nil, &out); err != nil {
		return domain.CeremonyState{}, err
	}
	return out, nil
}

// Start sets the ceremony start flag.
func (c *Client) Start(ctx context.Context, eventID string, isStart bool) (*StartResult, error) {
	body := map[string]bool{"isStart": isStart}
	var out StartResult
	if err := c.do(ctx, http.MethodPost, "/api/events/"+eventID+"/start", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Action applies a host action (light, skip, or back) and returns the
// authoritative counters.
func (c *Client) Action(ctx context.Context, eventID string, action domain.Action) (*ActionResult, error) {
	body := map[string]string{"action": string(action)}
	var out ActionResult
	if err := c.do(ctx, http.MethodPost, "/api/events/"+eventID+"/action", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
