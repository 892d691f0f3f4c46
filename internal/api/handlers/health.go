// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/fluffyriot/globeblog/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HealthCheckHandler answers /health. The app is healthy when the posts
// database answers a ping within two seconds; everything else is a 503.
func (h *Handler) HealthCheckHandler(c *gin.Context) {
	if h.DBConn == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "failure", "details": "database not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DBConn.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("health check ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "failure", "details": "database unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": config.AppVersion})
}
