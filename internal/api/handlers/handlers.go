// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import (
	"github.com/fluffyriot/globeblog/internal/blog"
	"github.com/fluffyriot/globeblog/internal/config"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	Blog   *blog.Service
	DBConn *sqlx.DB
	Config *config.AppConfig
}

func NewHandler(svc *blog.Service, dbConn *sqlx.DB, cfg *config.AppConfig) *Handler {
	return &Handler{
		Blog:   svc,
		DBConn: dbConn,
		Config: cfg,
	}
}
