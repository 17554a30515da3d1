package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"soundbridge/internal/domain"
	"soundbridge/internal/domain/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const frozenNow = 1_700_000_000

type updaterFixture struct {
	updater  *Updater
	metadata *mocks.MockMetadataService
	assets   *mocks.MockAssetStore
	images   *mocks.MockImageSource
	presence *mocks.MockPresenceConnection
}

func newUpdaterFixture(t *testing.T, ctrl *gomock.Controller, opts Options, upload bool) *updaterFixture {
	t.Helper()

	f := &updaterFixture{
		metadata: mocks.NewMockMetadataService(ctrl),
		assets:   mocks.NewMockAssetStore(ctrl),
		images:   mocks.NewMockImageSource(ctrl),
		presence: mocks.NewMockPresenceConnection(ctrl),
	}

	resolver := NewResolver(zap.NewNop(), f.assets, f.images, upload, passthrough)
	rotator := NewRotator(zap.NewNop(), "up")
	f.updater = NewUpdater(zap.NewNop(), opts, f.metadata, resolver, rotator, f.presence)
	f.updater.now = func() time.Time { return time.Unix(frozenNow, 0) }
	return f
}

func TestUpdaterValidationNeverTakesLock(t *testing.T) {
	tests := []struct {
		name string
		req  domain.UpdateRequest
	}{
		{name: "Missing url", req: domain.UpdateRequest{Pos: 30}},
		{name: "Missing pos", req: domain.UpdateRequest{URL: "https://soundcloud.com/a/b", Pos: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no EXPECT anywhere: a malformed request reaches no collaborator
			f := newUpdaterFixture(t, ctrl, Options{}, false)

			err := f.updater.Update(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}

			// the busy gate was never acquired
			if !f.updater.mu.TryLock() {
				t.Error("lock is held after a rejected request")
			} else {
				f.updater.mu.Unlock()
			}
		})
	}
}

func TestUpdaterNotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUpdaterFixture(t, ctrl, Options{}, false)
	f.presence.EXPECT().Status().Return(false)

	err := f.updater.Update(context.Background(), domain.UpdateRequest{URL: "https://soundcloud.com/a/b", Pos: 0})
	if !errors.Is(err, domain.ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestUpdaterBusyGate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUpdaterFixture(t, ctrl, Options{}, false)
	f.presence.EXPECT().Status().Return(true).AnyTimes()

	// simulate an in-flight update
	f.updater.mu.Lock()
	err := f.updater.Update(context.Background(), domain.UpdateRequest{URL: "https://soundcloud.com/a/b", Pos: 0})
	if !errors.Is(err, domain.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	f.updater.mu.Unlock()

	// once the first call settles a subsequent one proceeds (fast path here)
	f.presence.EXPECT().Activity().Return(&domain.Activity{
		TrackURL:      "https://soundcloud.com/a/b",
		TrackDuration: 60_000,
	})
	f.presence.EXPECT().SetActivity(gomock.Any(), gomock.Any()).Return(nil)
	f.presence.EXPECT().SetActivityTimeout(gomock.Any())

	if err := f.updater.Update(context.Background(), domain.UpdateRequest{URL: "https://soundcloud.com/a/b", Pos: 0}); err != nil {
		t.Fatalf("update after settle failed: %v", err)
	}
}

func TestUpdaterFastPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// metadata, asset store and image source carry no expectations: the fast
	// path must not fetch metadata or resolve artwork
	f := newUpdaterFixture(t, ctrl, Options{}, true)

	last := &domain.Activity{
		TrackURL:      "https://soundcloud.com/a/b",
		TrackDuration: 180_000,
		Details:       "🎵 Night",
		LargeImageKey: "track_42",
	}

	var pushed *domain.Activity
	f.presence.EXPECT().Status().Return(true)
	f.presence.EXPECT().Activity().Return(last)
	f.presence.EXPECT().SetActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, act *domain.Activity) error {
			pushed = act
			return nil
		})
	f.presence.EXPECT().SetActivityTimeout(int64(frozenNow - 30 + 180 + 15))

	err := f.updater.Update(context.Background(), domain.UpdateRequest{URL: "https://soundcloud.com/a/b", Pos: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pushed.StartTimestamp != frozenNow-30 {
		t.Errorf("start timestamp: want %d, got %d", frozenNow-30, pushed.StartTimestamp)
	}
	if pushed.EndTimestamp != pushed.StartTimestamp+180 {
		t.Errorf("end timestamp: want start+180, got %d", pushed.EndTimestamp)
	}
	// everything except the timestamps is carried over unchanged
	if pushed.Details != last.Details || pushed.LargeImageKey != last.LargeImageKey {
		t.Error("fast path must not rebuild the payload")
	}
}

func TestUpdaterFullPathUploadDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// upload disabled: the asset store and image source record zero calls
	f := newUpdaterFixture(t, ctrl, Options{ListenButtonText: "▶ Listen on SoundCloud"}, false)

	f.metadata.EXPECT().TrackData(gomock.Any(), "https://soundcloud.com/a/b").Return(&domain.TrackMetadata{
		ID:         42,
		Title:      "Night - Drive",
		Duration:   180_000,
		ArtworkURL: "http://cdn/art.jpg",
		Artist: domain.TrackArtist{
			ID:        7,
			Username:  "alba",
			AvatarURL: "http://cdn/avatar.jpg",
		},
	}, nil)

	var pushed *domain.Activity
	f.presence.EXPECT().Status().Return(true)
	f.presence.EXPECT().Activity().Return(nil)
	f.presence.EXPECT().SetActivity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, act *domain.Activity) error {
			pushed = act
			return nil
		})
	f.presence.EXPECT().SetActivityTimeout(int64(frozenNow - 30 + 180 + 15))

	err := f.updater.Update(context.Background(), domain.UpdateRequest{URL: "https://soundcloud.com/a/b", Pos: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := pushed.EndTimestamp - pushed.StartTimestamp; got != 180 {
		t.Errorf("duration: want 180s, got %d", got)
	}
	// pages: [Night, Drive, 🎤 alba], cursor advanced to 1
	if pushed.Details != "🎵 Drive" {
		t.Errorf("details: want %q, got %q", "🎵 Drive", pushed.Details)
	}
	if pushed.State != "🎤 alba" {
		t.Errorf("state: want %q, got %q", "🎤 alba", pushed.State)
	}
	// both slots resolve to the raw URLs, no asset-store involvement
	if pushed.LargeImageKey != "http://cdn/art.jpg" {
		t.Errorf("large image: want raw artwork URL, got %q", pushed.LargeImageKey)
	}
	if pushed.SmallImageKey != "http://cdn/avatar.jpg" {
		t.Errorf("small image: want raw avatar URL, got %q", pushed.SmallImageKey)
	}
	if pushed.LargeImageText != "Night - Drive" || pushed.SmallImageText != "alba" {
		t.Error("image alt texts must carry title and username")
	}
	if len(pushed.Buttons) != 1 || pushed.Buttons[0].URL != "https://soundcloud.com/a/b" {
		t.Errorf("button must link the requested track, got %+v", pushed.Buttons)
	}
	if pushed.Buttons[0].Label != "▶ Listen on SoundCloud" {
		t.Errorf("button label: got %q", pushed.Buttons[0].Label)
	}
	if pushed.TrackURL != "https://soundcloud.com/a/b" || pushed.TrackDuration != 180_000 {
		t.Error("payload must cache track url and duration for the fast path")
	}
}

func TestUpdaterFailuresReleaseLock(t *testing.T) {
	boom := errors.New("upstream exploded")

	tests := []struct {
		name      string
		upload    bool
		setupMock func(*updaterFixture)
	}{
		{
			name: "Metadata fetch failure",
			setupMock: func(f *updaterFixture) {
				f.presence.EXPECT().Status().Return(true)
				f.presence.EXPECT().Activity().Return(nil)
				f.metadata.EXPECT().TrackData(gomock.Any(), gomock.Any()).Return(nil, boom)
			},
		},
		{
			name:   "Artwork resolution failure",
			upload: true,
			setupMock: func(f *updaterFixture) {
				f.presence.EXPECT().Status().Return(true)
				f.presence.EXPECT().Activity().Return(nil)
				f.metadata.EXPECT().TrackData(gomock.Any(), gomock.Any()).Return(&domain.TrackMetadata{
					ID: 42, Title: "t", Duration: 1000, ArtworkURL: "http://cdn/a.jpg",
				}, nil)
				f.assets.EXPECT().List(gomock.Any()).Return(nil, boom)
			},
		},
		{
			name: "Push failure",
			setupMock: func(f *updaterFixture) {
				f.presence.EXPECT().Status().Return(true)
				f.presence.EXPECT().Activity().Return(&domain.Activity{TrackURL: "https://soundcloud.com/a/b"})
				f.presence.EXPECT().SetActivity(gomock.Any(), gomock.Any()).Return(boom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newUpdaterFixture(t, ctrl, Options{}, tt.upload)
			tt.setupMock(f)

			err := f.updater.Update(context.Background(), domain.UpdateRequest{URL: "https://soundcloud.com/a/b", Pos: 0})
			if !errors.Is(err, boom) {
				t.Fatalf("expected the originating error, got %v", err)
			}

			if !f.updater.mu.TryLock() {
				t.Error("lock is held after a failed update")
			} else {
				f.updater.mu.Unlock()
			}
		})
	}
}

func TestUpdaterUnauthorizedPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newUpdaterFixture(t, ctrl, Options{}, false)
	f.presence.EXPECT().Status().Return(true)
	f.presence.EXPECT().Activity().Return(nil)
	f.metadata.EXPECT().TrackData(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUnauthorized)

	err := f.updater.Update(context.Background(), domain.UpdateRequest{URL: "https://soundcloud.com/a/b", Pos: 0})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("unauthorized condition must propagate unchanged, got %v", err)
	}
}
