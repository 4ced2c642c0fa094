// Package preview provides best-effort preview URL resolution for catalog
// tracks.
//
// Spotify stopped returning preview_url for most tracks from the catalog
// API, so a companion backend performs the lookup out-of-band. This package
// contains the HTTP client for that backend, a session-scoped cache of
// lookup results, and a Resolver combining the two.
package preview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tunepeek/tunepeek/pkg/config"
)

// Client calls the preview resolver backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Entry
}

// lookupRequest is the JSON body for a preview lookup.
type lookupRequest struct {
	TrackName  string `json:"trackName"`
	ArtistName string `json:"artistName,omitempty"`
}

// lookupResponse is the backend's answer to a preview lookup.
type lookupResponse struct {
	Success    bool       `json:"success"`
	PreviewURL string     `json:"previewUrl"`
	Track      *TrackMeta `json:"track,omitempty"`
	Message    string     `json:"message,omitempty"`
}

// TrackMeta is the descriptive metadata the backend may attach to a hit.
type TrackMeta struct {
	Name        string `json:"name"`
	Artist      string `json:"artist"`
	SpotifyURL  string `json:"spotifyUrl"`
	AlbumName   string `json:"albumName"`
	ReleaseDate string `json:"releaseDate"`
	Popularity  int    `json:"popularity"`
	DurationMS  int    `json:"durationMs"`
}

// healthResponse is the backend's health probe answer.
type healthResponse struct {
	Success              bool   `json:"success"`
	Message              string `json:"message"`
	SpotifyPreviewFinder string `json:"spotifyPreviewFinder"`
	Timestamp            string `json:"timestamp"`
}

// NewClient creates a preview backend client from configuration.
func NewClient(cfg config.BackendConfig) *Client {
	baseURL := cfg.APIURL
	if baseURL == "" {
		baseURL = "http://localhost:3001/api"
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout()) * time.Second,
		},
		logger: log.WithField("component", "preview_client"),
	}
}

// FindPreview asks the backend for a preview URL for the given track and
// artist. An empty URL with a nil error means the backend found nothing.
func (c *Client) FindPreview(ctx context.Context, trackName, artistName string) (string, error) {
	body, err := json.Marshal(lookupRequest{TrackName: trackName, ArtistName: artistName})
	if err != nil {
		return "", fmt.Errorf("failed to encode preview request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/preview", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create preview request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.WithFields(log.Fields{
		"track_name":  trackName,
		"artist_name": artistName,
	}).Debug("Requesting preview URL from backend")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("preview request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("preview request returned status %d", resp.StatusCode)
	}

	var result lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode preview response: %w", err)
	}

	if !result.Success || result.PreviewURL == "" {
		c.logger.WithFields(log.Fields{
			"track_name": trackName,
			"message":    result.Message,
		}).Debug("Backend reported no preview available")
		return "", nil
	}

	c.logger.WithFields(log.Fields{
		"track_name":  trackName,
		"preview_url": result.PreviewURL,
	}).Debug("Backend resolved preview URL")

	return result.PreviewURL, nil
}

// Health checks the backend health endpoint and verifies the preview finder
// is initialized.
func (c *Client) Health(ctx context.Context) error {
	var result healthResponse
	if err := c.getJSON(ctx, c.baseURL+"/health", &result); err != nil {
		return err
	}

	if !result.Success {
		return fmt.Errorf("preview backend unhealthy: %s", result.Message)
	}
	if result.SpotifyPreviewFinder != "initialized" {
		return fmt.Errorf("preview finder not initialized: %s", result.SpotifyPreviewFinder)
	}

	return nil
}

// Test hits the backend probe endpoint and returns the raw response body.
// Diagnostics only.
func (c *Client) Test(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/test", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create test request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("test request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read test response: %w", err)
	}

	return string(data), nil
}

// Available reports whether the backend is reachable and ready.
func (c *Client) Available(ctx context.Context) bool {
	if err := c.Health(ctx); err != nil {
		c.logger.WithError(err).Debug("Preview backend unavailable")
		return false
	}
	return true
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
