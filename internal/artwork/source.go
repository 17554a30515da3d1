// Package artwork produces upload-ready image payloads: remote artwork
// fetched and normalized, or deterministic stock placeholders.
package artwork

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

const (
	maxImageSize = 10 * 1024 * 1024 // 10 MB
	maxDimension = 512              // assets above this are downscaled before upload
)

// placeholderPalette colors the stock placeholder images. Eleven entries so
// `id mod 11` picks a stable one per subject.
var placeholderPalette = [11]color.NRGBA{
	{R: 0xE6, G: 0x7E, B: 0x22, A: 0xFF},
	{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF},
	{R: 0x9B, G: 0x59, B: 0xB6, A: 0xFF},
	{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF},
	{R: 0x1A, G: 0xBC, B: 0x9C, A: 0xFF},
	{R: 0x2E, G: 0xCC, B: 0x71, A: 0xFF},
	{R: 0xF1, G: 0xC4, B: 0x0F, A: 0xFF},
	{R: 0x95, G: 0xA5, B: 0xA6, A: 0xFF},
	{R: 0x34, G: 0x49, B: 0x5E, A: 0xFF},
	{R: 0xD3, G: 0x54, B: 0x00, A: 0xFF},
	{R: 0x8E, G: 0x44, B: 0xAD, A: 0xFF},
}

// Source fetches and encodes image payloads for asset upload
type Source struct {
	logger *zap.Logger
	client *http.Client
}

// NewSource creates an image source
func NewSource(logger *zap.Logger) *Source {
	return &Source{
		logger: logger,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchEncoded downloads the image at url, normalizes it (downscale to at
// most 512x512, re-encode as PNG) and returns it as a base64 data URI.
func (s *Source) FetchEncoded(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "soundbridge/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("artwork fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("artwork fetch returned status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return "", fmt.Errorf("artwork url is not an image: %s", ct)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize))
	if err != nil {
		return "", fmt.Errorf("failed to read artwork body: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode artwork: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	encoded, err := encodePNG(img)
	if err != nil {
		return "", err
	}

	s.logger.Debug("artwork fetched and encoded",
		zap.String("url", url),
		zap.Int("bytes", len(data)))
	return encoded, nil
}

// Placeholder returns the stock image for the given palette index as a
// base64 data URI. Any integer index is valid; it wraps onto the palette.
func (s *Source) Placeholder(index int) (string, error) {
	i := ((index % len(placeholderPalette)) + len(placeholderPalette)) % len(placeholderPalette)
	img := imaging.New(maxDimension, maxDimension, placeholderPalette[i])
	return encodePNG(img)
}

// encodePNG renders an image into the data-URI form the asset upload expects
func encodePNG(img image.Image) (string, error) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode artwork: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
