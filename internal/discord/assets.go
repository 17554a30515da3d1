// Package discord implements the two Discord-facing collaborators: the
// application asset store (REST) and the presence connection (IPC).
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"soundbridge/internal/domain"

	"go.uber.org/zap"
)

const defaultAssetBaseURL = "https://discordapp.com/api/oauth2/applications"

// AssetClient manages the application's rich-presence assets. The asset list
// doubles as the artwork cache index; the resolver queries it live on every
// update.
type AssetClient struct {
	logger   *zap.Logger
	client   *http.Client
	baseURL  string
	clientID string
	apiKey   string
}

// NewAssetClient creates the asset store client. apiKey is sent verbatim in
// the authorization header, as the asset endpoints expect.
func NewAssetClient(logger *zap.Logger, clientID, apiKey string) *AssetClient {
	return &AssetClient{
		logger:   logger,
		clientID: clientID,
		apiKey:   apiKey,
		baseURL:  defaultAssetBaseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type assetDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
}

// List fetches the full asset list. Discord returns assets oldest first,
// which is what makes "evict index 0" an oldest-entry eviction.
func (c *AssetClient) List(ctx context.Context) ([]domain.Asset, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.assetsURL(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("asset list failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("asset list returned status %d", resp.StatusCode)
	}

	var dtos []assetDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("failed to decode asset list: %w", err)
	}

	assets := make([]domain.Asset, len(dtos))
	for i, dto := range dtos {
		assets[i] = domain.Asset{ID: dto.ID, Name: dto.Name, Type: dto.Type}
	}

	c.logger.Debug("asset list fetched", zap.Int("count", len(assets)))
	return assets, nil
}

// Upload stores image data (a base64 data URI) under the given name
func (c *AssetClient) Upload(ctx context.Context, kind domain.ArtworkKind, name, imageData string) error {
	body, err := json.Marshal(map[string]any{
		"name":  name,
		"type":  kind.AssetType(),
		"image": imageData,
	})
	if err != nil {
		return fmt.Errorf("failed to encode asset upload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.assetsURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("asset upload failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("asset upload returned status %d", resp.StatusCode)
	}

	c.logger.Debug("asset uploaded", zap.String("name", name))
	return nil
}

// Delete removes a single asset by id
func (c *AssetClient) Delete(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, c.assetsURL()+"/"+id, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("asset delete failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("asset delete returned status %d", resp.StatusCode)
	}

	c.logger.Debug("asset deleted", zap.String("id", id))
	return nil
}

func (c *AssetClient) assetsURL() string {
	return fmt.Sprintf("%s/%s/assets", c.baseURL, c.clientID)
}

func (c *AssetClient) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	return req, nil
}
