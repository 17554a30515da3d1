// Package http exposes the ingest endpoint the browser extension posts
// playback ticks to.
package http

import (
	"context"
	"errors"
	"net/http"

	"soundbridge/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Updater is the slice of the orchestrator the transport needs
type Updater interface {
	Update(ctx context.Context, req domain.UpdateRequest) error
}

// activityRequest is the wire form of a playback tick. Pointer fields keep
// "absent" distinguishable from zero values.
type activityRequest struct {
	URL *string `json:"url"`
	Pos *int    `json:"pos"`
}

// SetupRouter builds the ingest router
func SetupRouter(logger *zap.Logger, updater Updater, presence domain.PresenceConnection) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/activity", handleActivity(logger, updater))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"connected": presence.Status()})
	})

	return r
}

func handleActivity(logger *zap.Logger, updater Updater) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req activityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error()})
			return
		}

		update := domain.UpdateRequest{Pos: -1}
		if req.URL != nil {
			update.URL = *req.URL
		}
		if req.Pos != nil {
			update.Pos = *req.Pos
		}

		if err := updater.Update(c.Request.Context(), update); err != nil {
			status := statusFor(err)
			if status == http.StatusBadGateway {
				logger.Warn("activity update failed", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// statusFor maps the pipeline's error taxonomy onto HTTP statuses
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotConnected):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrBusy):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}
