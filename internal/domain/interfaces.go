package domain

import "context"

//go:generate mockgen -destination=mocks/collaborators_mock.go -package=mocks soundbridge/internal/domain MetadataService,AssetStore,ImageSource,PresenceConnection

// MetadataService resolves a track locator into fresh track metadata.
// Implementations should return ErrUnauthorized (wrapped) when the remote
// service rejects the configured credentials.
type MetadataService interface {
	// TrackData fetches metadata for the track at the given permalink URL
	TrackData(ctx context.Context, url string) (*TrackMetadata, error)

	// SanitizeArtworkURL rewrites a raw artwork URL into the form the image
	// host serves at full quality (size suffix upgrade, query strip)
	SanitizeArtworkURL(url string) string
}

// AssetStore is the remote image-asset cache owned by the presence service.
// The listing is the cache index: there is deliberately no local copy.
type AssetStore interface {
	// List fetches the full asset list, oldest first
	List(ctx context.Context) ([]Asset, error)

	// Upload stores image data under the given cache key
	Upload(ctx context.Context, kind ArtworkKind, name, imageData string) error

	// Delete removes a single asset by id
	Delete(ctx context.Context, id string) error
}

// ImageSource produces upload-ready image payloads (base64 data URIs)
type ImageSource interface {
	// FetchEncoded downloads the image at url and re-encodes it for upload
	FetchEncoded(ctx context.Context, url string) (string, error)

	// Placeholder returns one of the stock placeholder images. The index is
	// expected to already be reduced modulo the placeholder count.
	Placeholder(index int) (string, error)
}

// PresenceConnection is the transport that displays the activity.
// It owns the last-pushed Activity snapshot, which the orchestrator reads to
// decide between a timestamp-only refresh and a full update.
type PresenceConnection interface {
	// Status reports whether the connection is currently established
	Status() bool

	// Activity returns the last pushed payload, or nil if none was pushed
	// (or it has been cleared)
	Activity() *Activity

	// SetActivity pushes a payload and records it as the current snapshot
	SetActivity(ctx context.Context, act *Activity) error

	// SetActivityTimeout schedules a fire-and-forget clear of the displayed
	// activity at the given epoch second, replacing any earlier schedule
	SetActivityTimeout(epochSeconds int64)
}
