// SPDX-License-Identifier: AGPL-3.0-only
package main

import (
	"github.com/fluffyriot/globeblog/internal/api/handlers"
	"github.com/fluffyriot/globeblog/internal/blog"
	"github.com/fluffyriot/globeblog/internal/config"
	"github.com/fluffyriot/globeblog/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {

	cfg := config.Load()

	dbConn, dbQueries, err := config.LoadDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("database init failed")
	}

	svc := blog.NewService(dbQueries)
	h := handlers.NewHandler(svc, dbConn, cfg)

	r := gin.Default()

	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.ClientOrigins,
		AllowMethods: []string{"GET", "HEAD"},
		AllowHeaders: []string{"*"},
	}))
	r.Use(sessions.Sessions("globeblog", cookie.NewStore([]byte(cfg.SessionSecret))))

	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")
	r.Static("/assets", "./assets")

	r.GET("/", h.RootHandler)
	r.GET("/health", h.HealthCheckHandler)

	api := r.Group("", middleware.CacheHeadersMiddleware(300))
	api.GET("/getpost", h.GetPostHandler)
	api.GET("/getpost/:id", h.GetPostHandler)
	api.GET("/getposts", h.GetPostsHandler)

	log.Info().Str("port", cfg.Port).Str("version", config.AppVersion).Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
