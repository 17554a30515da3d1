package activity

import "soundbridge/internal/domain"

// Payload image slots
const (
	slotPrimary   = 0 // large image
	slotSecondary = 1 // small image
)

// slotLayout is everything slot selection depends on besides the resolved
// keys: the rotator position after the per-update advance and the configured
// static fallbacks.
type slotLayout struct {
	cursor      int
	pageCount   int
	messages    int // configured custom-message count
	staticBig   string
	staticSmall string
}

// selectSlot maps one payload slot to an image reference: the track artwork,
// the artist artwork, a statically configured URL, or the default asset.
//
// The page list is laid out as [title pages..., artist page, message pages...],
// so `pageCount - messages - 1` is the artist page and everything at or after
// `pageCount - messages` is a custom message. The thresholds are kept exactly
// as the layout encodes them; do not "simplify" the arithmetic.
func selectSlot(slot int, keys [2]string, l slotLayout) string {
	switch slot {
	case slotPrimary:
		switch {
		case l.cursor <= l.pageCount-l.messages-2:
			return keys[slotPrimary]
		case l.cursor == l.pageCount-l.messages-1:
			return keys[slotSecondary]
		case l.staticBig != "":
			return l.staticBig
		}
	case slotSecondary:
		switch {
		case l.cursor >= l.pageCount-l.messages:
			return keys[slotSecondary]
		case l.staticSmall != "":
			return l.staticSmall
		}
	}

	if keys[slot] != "" {
		return keys[slot]
	}
	return domain.DefaultImageRef
}
