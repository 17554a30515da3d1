// Package soundcloud implements the metadata service against the SoundCloud
// public API.
package soundcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"soundbridge/internal/domain"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.soundcloud.com"

// Client resolves track permalink URLs into track metadata
type Client struct {
	logger   *zap.Logger
	client   *http.Client
	baseURL  string
	clientID string
}

// NewClient creates a SoundCloud API client authenticated by client id
func NewClient(logger *zap.Logger, clientID string) *Client {
	return &Client{
		logger:   logger,
		clientID: clientID,
		baseURL:  defaultBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// trackDTO mirrors the resolve endpoint's track representation
type trackDTO struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Duration   int64  `json:"duration"`
	ArtworkURL string `json:"artwork_url"`
	User       struct {
		ID        int64  `json:"id"`
		Username  string `json:"username"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user"`
}

// TrackData resolves the track at the given permalink URL. A 401 from the API
// is reported as domain.ErrUnauthorized; every other failure is generic.
func (c *Client) TrackData(ctx context.Context, trackURL string) (*domain.TrackMetadata, error) {
	endpoint := fmt.Sprintf("%s/resolve?url=%s&client_id=%s",
		c.baseURL, url.QueryEscape(trackURL), url.QueryEscape(c.clientID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "soundbridge/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("track resolve failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w (status %d)", domain.ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("track resolve returned status %d", resp.StatusCode)
	}

	var dto trackDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("failed to decode track data: %w", err)
	}

	c.logger.Debug("track resolved",
		zap.Int64("id", dto.ID),
		zap.String("title", dto.Title))

	return &domain.TrackMetadata{
		ID:         dto.ID,
		Title:      dto.Title,
		Duration:   dto.Duration,
		ArtworkURL: dto.ArtworkURL,
		Artist: domain.TrackArtist{
			ID:        dto.User.ID,
			Username:  dto.User.Username,
			AvatarURL: dto.User.AvatarURL,
		},
	}, nil
}

// SanitizeArtworkURL upgrades a CDN artwork URL to its 500x500 rendition and
// drops any query string. The CDN hands out "-large" (100x100) URLs in track
// metadata but serves better sizes under the same path.
func (c *Client) SanitizeArtworkURL(raw string) string {
	if i := strings.Index(raw, "?"); i >= 0 {
		raw = raw[:i]
	}
	return strings.Replace(raw, "-large.", "-t500x500.", 1)
}
