// SPDX-License-Identifier: AGPL-3.0-only
package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// CacheHeadersMiddleware marks read-only API responses as cacheable. Posts
// change rarely; a short shared max-age keeps the card stack snappy without
// an invalidation story.
func CacheHeadersMiddleware(maxAgeSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d", maxAgeSeconds))
		c.Next()
	}
}
