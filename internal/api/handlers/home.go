// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"html/template"
	"net/http"

	"github.com/fluffyriot/globeblog/internal/blog"
	"github.com/fluffyriot/globeblog/internal/config"
	"github.com/fluffyriot/globeblog/internal/helpers"
	"github.com/fluffyriot/globeblog/internal/models"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const langSessionKey = "lang"

// RootHandler renders the index page with the latest post and the full card
// stack. The two queries run concurrently; either one failing renders the
// error page instead of dropping the response on the floor.
func (h *Handler) RootHandler(c *gin.Context) {
	ctx := c.Request.Context()

	var latestEnv, listEnv blog.Envelope

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		latestEnv = h.Blog.GetLatestPost(gctx)
		return nil
	})
	g.Go(func() error {
		listEnv = h.Blog.ListSnippets(gctx)
		return nil
	})
	g.Wait()

	if latestEnv.Status != http.StatusOK {
		h.renderError(c, latestEnv)
		return
	}
	if listEnv.Status != http.StatusOK {
		h.renderError(c, listEnv)
		return
	}

	latest, _ := latestEnv.Message.(models.Post)
	snippets, _ := listEnv.Message.([]models.PostSnippet)

	session := sessions.Default(c)
	lang := models.DefaultLanguage
	if chosen := c.Query("lang"); chosen != "" {
		for _, known := range models.Languages {
			if chosen == known {
				lang = chosen
				session.Set(langSessionKey, lang)
				session.Save()
				break
			}
		}
	} else if saved, ok := session.Get(langSessionKey).(string); ok && saved != "" {
		lang = saved
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":       latest.Title,
		"latestPost":  latest,
		"posts":       snippets,
		"lang":        lang,
		"content":     template.HTML(latest.ContentByLanguage(lang)),
		"description": helpers.Excerpt(latest.ContentByLanguage(models.DefaultLanguage), 160),
		"app_version": config.AppVersion,
	})
}

func (h *Handler) renderError(c *gin.Context, env blog.Envelope) {
	detail, _ := env.Message.(string)
	c.HTML(env.Status, "error.html", gin.H{
		"error":       detail,
		"title":       "Error",
		"app_version": config.AppVersion,
	})
}
