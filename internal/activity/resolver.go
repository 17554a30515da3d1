package activity

import (
	"context"
	"fmt"
	"strings"

	"soundbridge/internal/domain"

	"go.uber.org/zap"
)

const (
	// MaxArtwork caps the remote asset store. Discord allows 150 assets per
	// application; staying below leaves room for manually managed ones.
	MaxArtwork = 145

	// placeholderCount is how many stock placeholder images exist
	placeholderCount = 11

	// defaultAvatarURL is the image host's stand-in for users without an
	// avatar; uploading it would waste an asset slot
	defaultAvatarURL = "http://a1.sndcdn.com/images/default_avatar_large.png"
)

// Resolver turns a (kind, subject id, remote image URL) triple into a
// presence-displayable image reference. With uploads enabled it maintains the
// remote asset cache; otherwise it passes URLs straight through.
//
// The cache index is the live asset listing, queried per resolve. Two
// concurrent resolves of the same key can both miss and both upload; the
// second write wins and nothing breaks, so the race is accepted rather than
// guarded.
type Resolver struct {
	logger   *zap.Logger
	assets   domain.AssetStore
	images   domain.ImageSource
	sanitize func(string) string
	upload   bool
}

// NewResolver creates an artwork resolver. sanitize rewrites remote artwork
// URLs into their full-quality form before fetching (the metadata service
// knows its image host's conventions).
func NewResolver(logger *zap.Logger, assets domain.AssetStore, images domain.ImageSource, upload bool, sanitize func(string) string) *Resolver {
	return &Resolver{
		logger:   logger,
		assets:   assets,
		images:   images,
		sanitize: sanitize,
		upload:   upload,
	}
}

// Resolve returns the image reference for the subject's artwork. Any failing
// step (list fetch, image fetch, eviction, upload) aborts the resolve with
// that error; no fallback reference is substituted.
func (r *Resolver) Resolve(ctx context.Context, kind domain.ArtworkKind, id int64, url string) (string, error) {
	if !r.upload {
		// Discord displays plain URLs in image slots, no asset needed
		if url != "" {
			return url, nil
		}
		return domain.DefaultImageRef, nil
	}

	key := kind.CacheKey(id)
	r.logger.Debug("resolving artwork", zap.String("key", key), zap.String("url", url))

	assets, err := r.assets.List(ctx)
	if err != nil {
		return "", fmt.Errorf("asset list fetch failed: %w", err)
	}

	for _, asset := range assets {
		if asset.Name == key {
			r.logger.Debug("artwork already uploaded", zap.String("key", key))
			return key, nil
		}
	}

	data, err := r.imageData(ctx, id, url)
	if err != nil {
		return "", err
	}

	if len(assets) >= MaxArtwork {
		oldest := assets[0]
		r.logger.Debug("asset limit reached, evicting oldest",
			zap.String("id", oldest.ID),
			zap.String("name", oldest.Name))
		if err := r.assets.Delete(ctx, oldest.ID); err != nil {
			return "", fmt.Errorf("asset eviction failed: %w", err)
		}
	}

	if err := r.assets.Upload(ctx, kind, key, data); err != nil {
		return "", fmt.Errorf("asset upload failed: %w", err)
	}

	r.logger.Debug("artwork uploaded", zap.String("key", key))
	return key, nil
}

// imageData builds the upload payload: a stock placeholder when the subject
// has no usable artwork, the fetched remote image otherwise.
func (r *Resolver) imageData(ctx context.Context, id int64, url string) (string, error) {
	if url == "" || strings.HasPrefix(url, defaultAvatarURL) {
		r.logger.Debug("artwork is placeholder, using stock image", zap.Int64("id", id))
		return r.images.Placeholder(int(id % placeholderCount))
	}
	return r.images.FetchEncoded(ctx, r.sanitize(url))
}
