package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrUnreachable wraps transport failures: the backend could not be contacted.
	ErrUnreachable = errors.New("backend unreachable")
	// ErrBadResponse wraps 2xx responses whose body could not be decoded.
	ErrBadResponse = errors.New("backend returned a malformed response")
)

// maxBodySize caps how much of a backend response is read.
const maxBodySize = 1 << 20

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Message    string // the backend's {error} text, may be empty
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

// API is the subset of the venue backend this service consumes.
type API interface {
	Schedule(ctx context.Context, courtID, date string) ([]ScheduleEntry, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error)
	CheckBooking(ctx context.Context, filter url.Values) (*Booking, error)
	OpenMatches(ctx context.Context) ([]OpenMatch, error)
}

// Client talks JSON over HTTP to the venue backend rooted at baseURL
// (e.g. http://localhost:4000/api).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Schedule(ctx context.Context, courtID, date string) ([]ScheduleEntry, error) {
	q := url.Values{}
	q.Set("courtId", courtID)
	q.Set("date", date)

	var entries []ScheduleEntry
	if err := c.do(ctx, http.MethodGet, "/bookings/schedule", q, nil, &entries); err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}
	return entries, nil
}

func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	var out CreateBookingResponse
	if err := c.do(ctx, http.MethodPost, "/bookings", nil, req, &out); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &out, nil
}

// CheckBooking queries GET /bookings/check with exactly the given filter
// (either code or phone).
func (c *Client) CheckBooking(ctx context.Context, filter url.Values) (*Booking, error) {
	var out Booking
	if err := c.do(ctx, http.MethodGet, "/bookings/check", filter, nil, &out); err != nil {
		return nil, fmt.Errorf("check booking: %w", err)
	}
	return &out, nil
}

func (c *Client) OpenMatches(ctx context.Context) ([]OpenMatch, error) {
	var out []OpenMatch
	if err := c.do(ctx, http.MethodGet, "/matches/open", nil, nil, &out); err != nil {
		return nil, fmt.Errorf("list open matches: %w", err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, dest any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(raw, &eb)
		return &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(eb.Error)}
	}

	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return nil
}
