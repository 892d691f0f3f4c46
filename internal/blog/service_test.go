// SPDX-License-Identifier: AGPL-3.0-only
package blog

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/fluffyriot/globeblog/internal/database"
	"github.com/fluffyriot/globeblog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	rows []database.PostRow
	err  error

	allCalls int
}

func (f *fakeStore) GetAllPosts(ctx context.Context) ([]database.PostRow, error) {
	f.allCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeStore) GetPostByID(ctx context.Context, id int64) (database.PostRow, error) {
	if f.err != nil {
		return database.PostRow{}, f.err
	}
	for _, row := range f.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return database.PostRow{}, sql.ErrNoRows
}

func (f *fakeStore) GetLatestPost(ctx context.Context) (database.PostRow, error) {
	if f.err != nil {
		return database.PostRow{}, f.err
	}
	if len(f.rows) == 0 {
		return database.PostRow{}, sql.ErrNoRows
	}
	return f.rows[0], nil
}

func testRows() []database.PostRow {
	return []database.PostRow{
		{ID: 2, Date: time.Date(2019, 3, 2, 10, 0, 0, 0, time.UTC), Image: "lisbon.jpg", Title: "Three Days in Lisbon", Category: 2, En: "en body", Pl: "pl body", Pt: "pt body"},
		{ID: 1, Date: time.Date(2018, 11, 5, 20, 15, 0, 0, time.UTC), Image: "", Title: "On Slow Mornings", Category: 1, En: `<p><img src="/assets/coffee.svg"/>before coffee</p>`, Pl: "", Pt: ""},
	}
}

func TestListSnippets(t *testing.T) {
	svc := NewService(&fakeStore{rows: testRows()})

	env := svc.ListSnippets(context.Background())
	require.Equal(t, http.StatusOK, env.Status)

	snippets, ok := env.Message.([]models.PostSnippet)
	require.True(t, ok)
	require.Len(t, snippets, 2)

	assert.Equal(t, int64(2), snippets[0].ID)
	assert.Equal(t, "Travel", snippets[0].Category)
	assert.Equal(t, "2 Mar 2019", snippets[0].DateString)

	// The record without a cover image borrows the first one in its body,
	// reduced to the bare file name.
	assert.Equal(t, "coffee.svg", snippets[1].Image)
}

func TestListSnippetsStoreFailure(t *testing.T) {
	svc := NewService(&fakeStore{err: errors.New("connection refused")})

	env := svc.ListSnippets(context.Background())
	assert.Equal(t, http.StatusInternalServerError, env.Status)
	assert.Equal(t, "connection refused", env.Message)
}

func TestGetPostByID(t *testing.T) {
	svc := NewService(&fakeStore{rows: testRows()})

	env := svc.GetPostByID(context.Background(), 2)
	require.Equal(t, http.StatusOK, env.Status)

	post, ok := env.Message.(models.Post)
	require.True(t, ok)
	assert.Equal(t, int64(2), post.ID)
	assert.Equal(t, "en body", post.Content["en"])
	assert.Equal(t, "pl body", post.Content["pl"])
	assert.Equal(t, "pt body", post.Content["pt"])
}

func TestGetPostByIDNotFound(t *testing.T) {
	svc := NewService(&fakeStore{rows: testRows()})

	env := svc.GetPostByID(context.Background(), 999)
	assert.Equal(t, http.StatusNotFound, env.Status)
	assert.Equal(t, "Post not found.", env.Message)
}

func TestGetLatestPost(t *testing.T) {
	svc := NewService(&fakeStore{rows: testRows()})

	env := svc.GetLatestPost(context.Background())
	require.Equal(t, http.StatusOK, env.Status)

	post, ok := env.Message.(models.Post)
	require.True(t, ok)
	assert.Equal(t, int64(2), post.ID)
}

func TestGetLatestPostEmptyStore(t *testing.T) {
	svc := NewService(&fakeStore{})

	env := svc.GetLatestPost(context.Background())
	assert.Equal(t, http.StatusNotFound, env.Status)
	assert.Equal(t, "Post not found.", env.Message)
}
