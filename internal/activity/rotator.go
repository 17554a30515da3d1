package activity

import (
	"errors"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// pageDelimiters splits long fragments into additional pages so the two
// presence text lines stay readable
var pageDelimiters = regexp.MustCompile(`[-|&,]`)

// ErrNoPages is returned when an advance is attempted over an empty fragment
// set. Rotating over zero pages would otherwise loop on a modulo-by-zero.
var ErrNoPages = errors.New("page list is empty, nothing to rotate")

// Rotator maintains the rotating cursor over the flattened display pages.
// It lives for the process lifetime and is shared across updates; the
// orchestrator's busy gate is the only writer, so no extra locking here.
type Rotator struct {
	logger    *zap.Logger
	direction int
	cursor    int
	pages     []string
}

// NewRotator creates a page rotator. scrollDirection "up" advances relative
// lookups forward through the page list, anything else reads backwards.
func NewRotator(logger *zap.Logger, scrollDirection string) *Rotator {
	direction := -1
	if scrollDirection == "up" {
		direction = 1
	}
	return &Rotator{
		logger:    logger,
		direction: direction,
	}
}

// Advance rebuilds the page list from the given fragments, moves the cursor
// exactly one step and returns the page it now points at. The list is
// replaced unconditionally; the cursor survives a content change modulo the
// new length.
func (r *Rotator) Advance(fragments []string) (string, error) {
	pages := splitFragments(fragments)
	if len(pages) == 0 {
		return "", ErrNoPages
	}

	if !slices.Equal(pages, r.pages) {
		r.logger.Debug("page list changed",
			zap.Strings("pages", pages),
			zap.Int("count", len(pages)))
	}
	r.pages = pages

	r.cursor = (r.cursor%len(pages) + 1) % len(pages)
	r.logger.Debug("page cursor advanced",
		zap.Int("cursor", r.cursor),
		zap.Int("count", len(pages)))

	return r.pages[r.cursor], nil
}

// Page returns the display line offset steps away from the cursor in the
// configured scroll direction, wrapping around the page list. Page(0) is the
// current line; Page(1) the adjacent one. Returns "" before the first
// Advance.
func (r *Rotator) Page(offset int) string {
	n := len(r.pages)
	if n == 0 {
		return ""
	}
	i := ((r.cursor+offset*r.direction)%n + n) % n
	return r.pages[i]
}

// Cursor returns the current rotation position
func (r *Rotator) Cursor() int {
	return r.cursor
}

// PageCount returns the number of pages built by the last Advance
func (r *Rotator) PageCount() int {
	return len(r.pages)
}

// splitFragments flattens the raw fragments into the ordered page list:
// every fragment is split on the delimiter set and whitespace-trimmed.
// Empty tokens are kept; a "a - - b" title really produces a blank page.
func splitFragments(fragments []string) []string {
	var pages []string
	for _, fragment := range fragments {
		for _, token := range pageDelimiters.Split(fragment, -1) {
			pages = append(pages, strings.TrimSpace(token))
		}
	}
	return pages
}
