// Package activity implements the presence update pipeline: resolving and
// caching artwork, rotating the status text pages, and composing and pushing
// the activity payload for each playback tick.
package activity

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"soundbridge/internal/domain"

	"go.uber.org/zap"
)

// waitBeforeClear is how long after a track's end the displayed activity
// survives before the scheduled auto-clear removes it, in seconds
const waitBeforeClear = 15

// Options are the orchestrator knobs that shape the composed payload
type Options struct {
	CustomMessages   []string
	ListenButtonText string
	StaticBigURL     string // empty when no static big image is configured
	StaticSmallURL   string
}

// Updater is the update orchestrator. One Update call runs at a time; a call
// arriving while another is in flight is rejected immediately with ErrBusy,
// never queued. The rotator and the busy gate are the only mutable state
// shared across invocations.
type Updater struct {
	logger   *zap.Logger
	opts     Options
	metadata domain.MetadataService
	resolver *Resolver
	rotator  *Rotator
	presence domain.PresenceConnection

	mu  sync.Mutex
	now func() time.Time
}

// NewUpdater creates the update orchestrator
func NewUpdater(
	logger *zap.Logger,
	opts Options,
	metadata domain.MetadataService,
	resolver *Resolver,
	rotator *Rotator,
	presence domain.PresenceConnection,
) *Updater {
	return &Updater{
		logger:   logger,
		opts:     opts,
		metadata: metadata,
		resolver: resolver,
		rotator:  rotator,
		presence: presence,
		now:      time.Now,
	}
}

// Update validates the request, takes the busy gate and runs either the
// timestamp-only fast path (same track still playing) or the full pipeline.
// Every failure is terminal for this invocation; the caller retries on its
// next playback tick.
func (u *Updater) Update(ctx context.Context, req domain.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		u.logger.Debug("rejecting bad request", zap.Error(err))
		return err
	}

	if !u.presence.Status() {
		u.logger.Debug("rejecting update, presence not connected")
		return domain.ErrNotConnected
	}

	if !u.mu.TryLock() {
		u.logger.Debug("rejecting update, another one is in flight")
		return domain.ErrBusy
	}
	defer u.mu.Unlock()

	now := u.now().Unix()

	if last := u.presence.Activity(); last != nil && last.TrackURL == req.URL {
		return u.refreshTimestamps(ctx, last, req, now)
	}

	return u.fullUpdate(ctx, req, now)
}

// refreshTimestamps is the fast path: the track is unchanged, so only the
// timestamps are recomputed from the cached duration. No metadata fetch, no
// artwork resolution, no page advance.
func (u *Updater) refreshTimestamps(ctx context.Context, last *domain.Activity, req domain.UpdateRequest, now int64) error {
	u.logger.Debug("track already displayed, updating timestamps only",
		zap.String("url", req.URL))

	updated := *last
	updated.StartTimestamp = now - int64(req.Pos)
	updated.EndTimestamp = updated.StartTimestamp + roundToSeconds(last.TrackDuration)

	if err := u.presence.SetActivity(ctx, &updated); err != nil {
		return err
	}
	u.presence.SetActivityTimeout(updated.EndTimestamp + waitBeforeClear)
	return nil
}

// fullUpdate fetches fresh metadata and runs the whole pipeline. Steps are
// strictly sequential: artist artwork only after track artwork, the push only
// after the rotator advanced and both slots are computed.
func (u *Updater) fullUpdate(ctx context.Context, req domain.UpdateRequest, now int64) error {
	u.logger.Debug("fetching track metadata", zap.String("url", req.URL))
	track, err := u.metadata.TrackData(ctx, req.URL)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			u.logger.Warn("metadata service rejected credentials, check the configured client id")
		}
		return err
	}
	u.logger.Debug("track metadata fetched", zap.Int64("id", track.ID), zap.String("title", track.Title))

	start := now - int64(req.Pos)
	end := start + roundToSeconds(track.Duration)

	var keys [2]string
	if keys[0], err = u.resolver.Resolve(ctx, domain.ArtworkTrack, track.ID, track.ArtworkURL); err != nil {
		return err
	}
	if keys[1], err = u.resolver.Resolve(ctx, domain.ArtworkArtist, track.Artist.ID, track.Artist.AvatarURL); err != nil {
		return err
	}

	fragments := make([]string, 0, 2+len(u.opts.CustomMessages))
	fragments = append(fragments, track.Title, "🎤 "+track.Artist.Username)
	fragments = append(fragments, u.opts.CustomMessages...)

	if _, err := u.rotator.Advance(fragments); err != nil {
		return err
	}

	layout := slotLayout{
		cursor:      u.rotator.Cursor(),
		pageCount:   u.rotator.PageCount(),
		messages:    len(u.opts.CustomMessages),
		staticBig:   u.opts.StaticBigURL,
		staticSmall: u.opts.StaticSmallURL,
	}

	act := &domain.Activity{
		TrackURL:       req.URL,
		TrackDuration:  track.Duration,
		Details:        "🎵 " + u.rotator.Page(0),
		State:          u.rotator.Page(1),
		StartTimestamp: start,
		EndTimestamp:   end,
		LargeImageKey:  selectSlot(slotPrimary, keys, layout),
		LargeImageText: track.Title,
		SmallImageKey:  selectSlot(slotSecondary, keys, layout),
		SmallImageText: track.Artist.Username,
		Buttons: []domain.ActivityButton{
			{Label: u.opts.ListenButtonText, URL: req.URL},
		},
	}

	u.logger.Debug("pushing activity",
		zap.String("details", act.Details),
		zap.String("state", act.State),
		zap.String("large", act.LargeImageKey),
		zap.String("small", act.SmallImageKey))

	if err := u.presence.SetActivity(ctx, act); err != nil {
		return err
	}
	u.presence.SetActivityTimeout(end + waitBeforeClear)

	u.logger.Info("activity updated",
		zap.String("title", track.Title),
		zap.String("artist", track.Artist.Username))
	return nil
}

// roundToSeconds converts a millisecond duration to whole seconds, rounding
// to nearest as the displayed countdown expects
func roundToSeconds(ms int64) int64 {
	return int64(math.Round(float64(ms) / 1000))
}
