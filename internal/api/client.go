// Package api is the HTTP gateway to the skill-sharing backend. Every
// operation is a single request/response; failures never escape this
// boundary untyped. Transport failures map to shared.ErrUnavailable, non-2xx
// responses to *shared.RejectedError carrying the server message verbatim.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skillshare/skilladmin/internal/logging"
	"github.com/skillshare/skilladmin/internal/models"
	"github.com/skillshare/skilladmin/internal/shared"
)

// TokenFunc supplies the current session token for outgoing requests.
// An empty return means no Authorization header is attached.
type TokenFunc func() string

type Client struct {
	baseURL string
	hc      *http.Client
	token   TokenFunc
	logger  logging.Logger
}

func New(baseURL string, timeout time.Duration, token TokenFunc, logger logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		token:   token,
		logger:  logger,
	}
}

// do issues one JSON request and decodes the response into out (when out is
// non-nil). It is the single choke point for error normalization.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	res, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUnavailable, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrUnavailable, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		rej := reject(res.StatusCode, data)
		c.logger.Debug(ctx, "request rejected",
			"request_id", requestID, "method", method, "path", path,
			"status", res.StatusCode, "message", rej.Message)
		return rej
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// reject extracts the server's error message. The backend sends {"message"}
// payloads; anything else is passed through as-is.
func reject(status int, body []byte) *shared.RejectedError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &shared.RejectedError{StatusCode: status, Message: payload.Message}
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return &shared.RejectedError{StatusCode: status, Message: msg}
	}
	return &shared.RejectedError{StatusCode: status, Message: http.StatusText(status)}
}

// Login exchanges credentials for a signed session token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	in := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", in, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// SignupRequest is the account-creation payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// Signup creates a new platform account. The backend responds 200 with no
// body on success.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.do(ctx, http.MethodPost, "/signup", req, nil)
}

// TransitionBooking posts an approval action ("approve" or "reject") to the
// booking's dedicated sub-path and returns the updated entity. The returned
// status is authoritative; callers must not assume their requested value
// was applied verbatim.
func (c *Client) TransitionBooking(ctx context.Context, id, action string) (models.Booking, error) {
	var out models.Booking
	path := fmt.Sprintf("/api/bookings/%s/%s", id, action)
	if err := c.do(ctx, http.MethodPut, path, nil, &out); err != nil {
		return models.Booking{}, err
	}
	return out, nil
}

// Analytics reads. Aggregate projections for the dashboard; read-only.

func (c *Client) PlatformUsage(ctx context.Context) ([]models.UsageBucket, error) {
	var out []models.UsageBucket
	if err := c.do(ctx, http.MethodGet, "/api/analytics/platform-usage", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PopularSkills(ctx context.Context) ([]models.PopularSkill, error) {
	var out []models.PopularSkill
	if err := c.do(ctx, http.MethodGet, "/api/analytics/popular-skills", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) InstructorEarnings(ctx context.Context) ([]models.InstructorEarning, error) {
	var out []models.InstructorEarning
	if err := c.do(ctx, http.MethodGet, "/api/analytics/instructor-earnings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
