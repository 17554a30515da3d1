package soundcloud

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"soundbridge/internal/domain"

	"go.uber.org/zap"
)

func TestClientTrackData(t *testing.T) {
	tests := []struct {
		name          string
		statusCode    int
		responseBody  string
		expectedError error
		expectedID    int64
	}{
		{
			name:       "Success - Valid track",
			statusCode: http.StatusOK,
			responseBody: `{
				"id": 42,
				"title": "Night Drive",
				"duration": 180000,
				"artwork_url": "http://cdn/art-large.jpg",
				"user": {"id": 7, "username": "alba", "avatar_url": "http://cdn/avatar.jpg"}
			}`,
			expectedID: 42,
		},
		{
			name:          "Unauthorized - Invalid client id",
			statusCode:    http.StatusUnauthorized,
			responseBody:  `{"errors":[{"error_message":"401 - Unauthorized"}]}`,
			expectedError: domain.ErrUnauthorized,
		},
		{
			name:         "Generic upstream failure",
			statusCode:   http.StatusInternalServerError,
			responseBody: `{}`,
		},
		{
			name:         "Malformed body",
			statusCode:   http.StatusOK,
			responseBody: `{not-json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path + "?" + r.URL.RawQuery
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			c := NewClient(zap.NewNop(), "secret-id")
			c.baseURL = server.URL

			track, err := c.TrackData(context.Background(), "https://soundcloud.com/alba/night-drive")

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if tt.expectedID == 0 {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if track.ID != tt.expectedID {
				t.Errorf("id: want %d, got %d", tt.expectedID, track.ID)
			}
			if track.Artist.Username != "alba" {
				t.Errorf("artist: want alba, got %s", track.Artist.Username)
			}
			if gotPath != "/resolve?url=https%3A%2F%2Fsoundcloud.com%2Falba%2Fnight-drive&client_id=secret-id" {
				t.Errorf("unexpected request: %s", gotPath)
			}
		})
	}
}

func TestSanitizeArtworkURL(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "Large rendition upgraded",
			raw:      "http://cdn/artworks-abc-large.jpg",
			expected: "http://cdn/artworks-abc-t500x500.jpg",
		},
		{
			name:     "Query string stripped",
			raw:      "http://cdn/artworks-abc-large.jpg?token=x&s=1",
			expected: "http://cdn/artworks-abc-t500x500.jpg",
		},
		{
			name:     "Already clean URL untouched",
			raw:      "http://cdn/artworks-abc-t500x500.jpg",
			expected: "http://cdn/artworks-abc-t500x500.jpg",
		},
	}

	c := NewClient(zap.NewNop(), "id")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.SanitizeArtworkURL(tt.raw); got != tt.expected {
				t.Errorf("want %q, got %q", tt.expected, got)
			}
		})
	}
}
