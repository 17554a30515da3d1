package domain

import "fmt"

// DefaultImageRef is the literal image reference Discord substitutes with the
// application's default asset.
const DefaultImageRef = "default"

// ArtworkKind identifies which subject an artwork belongs to
type ArtworkKind int

const (
	// ArtworkTrack is the track's cover artwork
	ArtworkTrack ArtworkKind = iota
	// ArtworkArtist is the artist's avatar
	ArtworkArtist
)

// CacheKey derives the deterministic asset-store name for a subject.
// Identical subjects always collide on the same key, which is what makes the
// remote asset list usable as a cache.
func (k ArtworkKind) CacheKey(id int64) string {
	if k == ArtworkTrack {
		return fmt.Sprintf("track_%d", id)
	}
	return fmt.Sprintf("artist_%d", id)
}

// AssetType returns the Discord asset type code used on upload
// (1 = large, 2 = small).
func (k ArtworkKind) AssetType() int {
	return int(k) + 1
}

// UpdateRequest is the immutable input of one activity update: the track
// locator and the current playback offset in seconds.
type UpdateRequest struct {
	URL string
	Pos int
}

// Validate rejects requests missing either field. A negative Pos means the
// caller never provided one (the JSON boundary maps absent fields to -1).
func (r UpdateRequest) Validate() error {
	if r.URL == "" {
		return fmt.Errorf("%w: missing url argument", ErrInvalidRequest)
	}
	if r.Pos < 0 {
		return fmt.Errorf("%w: missing pos argument", ErrInvalidRequest)
	}
	return nil
}

// TrackArtist is the uploader of a track
type TrackArtist struct {
	ID        int64
	Username  string
	AvatarURL string
}

// TrackMetadata is one track as reported by the metadata service.
// Fetched fresh per full update, never mutated.
type TrackMetadata struct {
	ID         int64
	Title      string
	Duration   int64 // milliseconds
	ArtworkURL string
	Artist     TrackArtist
}

// ActivityButton is a single clickable action on the presence card
type ActivityButton struct {
	Label string
	URL   string
}

// Activity is the composed presence payload. The presence connection keeps
// the last pushed Activity as its snapshot; TrackURL and TrackDuration exist
// so a later update for the same track can refresh timestamps without
// re-fetching metadata.
type Activity struct {
	TrackURL      string
	TrackDuration int64 // milliseconds, from metadata

	Details        string
	State          string
	StartTimestamp int64 // epoch seconds
	EndTimestamp   int64 // epoch seconds
	LargeImageKey  string
	LargeImageText string
	SmallImageKey  string
	SmallImageText string
	Buttons        []ActivityButton
}

// Asset is one entry of the remote asset store listing
type Asset struct {
	ID   string
	Name string
	Type int
}
