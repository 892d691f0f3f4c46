// SPDX-License-Identifier: AGPL-3.0-only
package database

import (
	"context"
	"time"
)

// PostRow is a raw posts record. Mapping into API entities happens in the
// blog service, nowhere else.
type PostRow struct {
	ID       int64     `db:"id"`
	Date     time.Time `db:"date"`
	Image    string    `db:"image"`
	Title    string    `db:"title"`
	Category int       `db:"category"`
	En       string    `db:"en"`
	Pl       string    `db:"pl"`
	Pt       string    `db:"pt"`
}

const postColumns = "id, date, image, title, category, en, pl, pt"

// GetAllPosts returns every post ordered by date descending.
func (q *Queries) GetAllPosts(ctx context.Context) ([]PostRow, error) {
	rows := []PostRow{}
	err := q.db.SelectContext(ctx, &rows,
		"SELECT "+postColumns+" FROM posts ORDER BY date DESC")
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetPostByID returns the post with the given primary key. Primary-key
// uniqueness is the database's job; zero rows surfaces as sql.ErrNoRows.
func (q *Queries) GetPostByID(ctx context.Context, id int64) (PostRow, error) {
	var row PostRow
	err := q.db.GetContext(ctx, &row,
		"SELECT "+postColumns+" FROM posts WHERE id = $1", id)
	return row, err
}

// GetLatestPost returns the most recent post. An empty table surfaces as
// sql.ErrNoRows.
func (q *Queries) GetLatestPost(ctx context.Context) (PostRow, error) {
	var row PostRow
	err := q.db.GetContext(ctx, &row,
		"SELECT "+postColumns+" FROM posts ORDER BY date DESC LIMIT 1")
	return row, err
}
