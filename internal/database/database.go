// SPDX-License-Identifier: AGPL-3.0-only
package database

import (
	"github.com/jmoiron/sqlx"
)

// Queries wraps the database handle with the read queries the blog needs.
// The workload is read-only; there is no write path.
type Queries struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Queries {
	return &Queries{db: db}
}
