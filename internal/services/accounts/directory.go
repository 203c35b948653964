package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mearas/realmwar/internal/model"
)

// Directory resolves in-game account names against the external game-account
// directory. Implemented over HTTP in production; tests supply a stub.
type Directory interface {
	// LookupUUID returns the stable account id for an in-game name.
	// Returns model.ErrAccountNotFound if no such account exists.
	LookupUUID(ctx context.Context, ign string) (string, error)
}

// Config holds settings for the HTTP directory client
type Config struct {
	// BaseURL is the directory endpoint, e.g. https://api.mojang.com
	BaseURL string
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for the directory client
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://api.mojang.com",
		Timeout: 10 * time.Second,
	}
}

// Client is the HTTP implementation of Directory
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new directory client
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Ensure Client implements Directory
var _ Directory = (*Client)(nil)

type profileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LookupUUID resolves an in-game name to its account UUID
func (c *Client) LookupUUID(ctx context.Context, ign string) (string, error) {
	endpoint := fmt.Sprintf("%s/users/profiles/minecraft/%s", c.baseURL, url.PathEscape(ign))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("account directory request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		var profile profileResponse
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
			return "", fmt.Errorf("failed to parse directory response: %w", err)
		}
		return profile.ID, nil
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent:
		return "", fmt.Errorf("%w: %q", model.ErrAccountNotFound, ign)
	default:
		return "", fmt.Errorf("account directory returned HTTP %d", resp.StatusCode)
	}
}
