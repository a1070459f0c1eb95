package mojang

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrInvalidUsername = errors.New("invalid username")
	ErrRateLimited     = errors.New("rate limited by profile service")
	ErrUnavailable     = errors.New("profile service unavailable")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,16}$`)

// Profile is a Minecraft player's identity
type Profile struct {
	UUID uuid.UUID
	Name string // name with the canonical capitalization
}

type profileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client resolves usernames against the Mojang profile API
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client for baseURL. The public API allows 600
// requests per 10 minutes; the limiter stays below that.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 10),
	}
}

// LookupProfile returns the profile currently using username
func (c *Client) LookupProfile(ctx context.Context, username string) (*Profile, error) {
	username = strings.TrimSpace(username)
	if !usernamePattern.MatchString(username) {
		return nil, ErrInvalidUsername
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/users/profiles/minecraft/%s", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent, http.StatusNotFound:
		return nil, ErrPlayerNotFound
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.WithFields(log.Fields{
			"status":   resp.StatusCode,
			"username": username,
			"body":     string(body),
		}).Warn("Unexpected profile service response")
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var pr profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("%w: failed to decode profile: %w", ErrUnavailable, err)
	}
	if pr.ID == "" {
		return nil, ErrPlayerNotFound
	}

	id, err := uuid.Parse(pr.ID)
	if err != nil {
		return nil, fmt.Errorf("profile service returned invalid id %q: %w", pr.ID, err)
	}

	return &Profile{UUID: id, Name: pr.Name}, nil
}
