package domain

import "errors"

// Error taxonomy of the update pipeline. Everything else that can fail
// (metadata fetch, asset operations, image fetch, the push itself) is an
// upstream error and propagates verbatim.
var (
	// ErrInvalidRequest rejects an update missing url or pos. Reported before
	// the busy gate, so a malformed request never holds the lock.
	ErrInvalidRequest = errors.New("invalid activity request")

	// ErrNotConnected rejects updates while the presence transport is down
	ErrNotConnected = errors.New("presence connection not established")

	// ErrBusy rejects a second update while one is still in flight.
	// The caller retries on its next playback tick; nothing is queued.
	ErrBusy = errors.New("an activity update is already being processed")

	// ErrUnauthorized marks a metadata fetch rejected for bad credentials.
	// Control flow treats it like any upstream failure; it only changes what
	// gets logged.
	ErrUnauthorized = errors.New("metadata service rejected credentials")
)
