// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fluffyriot/globeblog/internal/blog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GetPostHandler serves /getpost and /getpost/:id. A present id must be
// 1-20 digits; an absent id falls through to the latest post.
func (h *Handler) GetPostHandler(c *gin.Context) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("id")
	}

	ctx := c.Request.Context()

	if raw == "" {
		writeEnvelope(c, h.Blog.GetLatestPost(ctx))
		return
	}

	if !blog.ValidPostID(raw) {
		writeEnvelope(c, blog.Envelope{Status: http.StatusBadRequest, Message: "ID invalid."})
		return
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		// 20 digits can still overflow int64. Such an id is well formed but
		// can never match a stored post, so it gets the not-found answer.
		writeEnvelope(c, blog.Envelope{Status: http.StatusNotFound, Message: "Post not found."})
		return
	}

	writeEnvelope(c, h.Blog.GetPostByID(ctx, id))
}

// GetPostsHandler serves /getposts, echoing the snippet-list envelope.
func (h *Handler) GetPostsHandler(c *gin.Context) {
	writeEnvelope(c, h.Blog.ListSnippets(c.Request.Context()))
}

// writeEnvelope copies the envelope status into the HTTP status line and the
// body. The text/plain content type on a JSON body is what the deployed app
// has always sent and what the client expects; kept as is.
func writeEnvelope(c *gin.Context, env blog.Envelope) {
	body, err := json.Marshal(env)
	if err != nil {
		log.Error().Err(err).Msg("marshalling envelope failed")
		c.Data(http.StatusInternalServerError, "text/plain", []byte(`{"status":500,"message":"internal error"}`))
		return
	}
	c.Data(env.Status, "text/plain", body)
}
