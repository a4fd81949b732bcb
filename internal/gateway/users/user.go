package users

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// User represents an account from the users service.
type User struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// StatusError is a non-2xx reply from the users service.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("users gateway: unexpected status %d", e.Code)
}

// HTTPGateway is a users gateway backed by the users service REST API.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway creates a users gateway. Returns nil when no base URL is
// configured.
func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}
	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetUser fetches one user by type and ID. Returns nil when the user does
// not exist.
func (g *HTTPGateway) GetUser(ctx context.Context, userType, id string) (*User, error) {
	endpoint := fmt.Sprintf("%s/users/%s/%s",
		g.baseURL, url.PathEscape(userType), url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("users gateway: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("users gateway: GetUser: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var u User
		if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
			return nil, fmt.Errorf("users gateway: decode user: %w", err)
		}
		return &u, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, &StatusError{Code: resp.StatusCode}
	}
}
