package activity

import "testing"

func TestSelectSlot(t *testing.T) {
	keys := [2]string{"track_42", "artist_7"}

	tests := []struct {
		name     string
		slot     int
		keys     [2]string
		layout   slotLayout
		expected string
	}{
		// pageCount=5, messages=1: track pages end at cursor 2, the artist
		// page is cursor 3, the message page is cursor 4
		{
			name:     "Primary - track page boundary",
			slot:     slotPrimary,
			keys:     keys,
			layout:   slotLayout{cursor: 2, pageCount: 5, messages: 1},
			expected: "track_42",
		},
		{
			name:     "Primary - artist page boundary",
			slot:     slotPrimary,
			keys:     keys,
			layout:   slotLayout{cursor: 3, pageCount: 5, messages: 1},
			expected: "artist_7",
		},
		{
			name:     "Primary - message page uses static big image",
			slot:     slotPrimary,
			keys:     keys,
			layout:   slotLayout{cursor: 4, pageCount: 5, messages: 1, staticBig: "http://img/big.png"},
			expected: "http://img/big.png",
		},
		{
			name:     "Primary - message page without static image falls back to track key",
			slot:     slotPrimary,
			keys:     keys,
			layout:   slotLayout{cursor: 4, pageCount: 5, messages: 1},
			expected: "track_42",
		},
		{
			name:     "Secondary - message page shows artist key",
			slot:     slotSecondary,
			keys:     keys,
			layout:   slotLayout{cursor: 4, pageCount: 5, messages: 1},
			expected: "artist_7",
		},
		{
			name:     "Secondary - track page uses static small image",
			slot:     slotSecondary,
			keys:     keys,
			layout:   slotLayout{cursor: 1, pageCount: 5, messages: 1, staticSmall: "http://img/small.png"},
			expected: "http://img/small.png",
		},
		{
			name:     "Secondary - track page without static image falls back to artist key",
			slot:     slotSecondary,
			keys:     keys,
			layout:   slotLayout{cursor: 1, pageCount: 5, messages: 1},
			expected: "artist_7",
		},
		{
			name:     "Fallthrough - missing key yields default",
			slot:     slotPrimary,
			keys:     [2]string{"", ""},
			layout:   slotLayout{cursor: 4, pageCount: 5, messages: 1},
			expected: "default",
		},
		{
			name:     "No custom messages - last page is the artist page",
			slot:     slotPrimary,
			keys:     keys,
			layout:   slotLayout{cursor: 1, pageCount: 2, messages: 0},
			expected: "artist_7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := selectSlot(tt.slot, tt.keys, tt.layout); got != tt.expected {
				t.Errorf("selectSlot(%d, %+v): want %q, got %q", tt.slot, tt.layout, tt.expected, got)
			}
		})
	}
}
