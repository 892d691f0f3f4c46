// SPDX-License-Identifier: AGPL-3.0-only
package blog

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fluffyriot/globeblog/internal/database"
	"github.com/fluffyriot/globeblog/internal/models"
	"github.com/rs/zerolog/log"
)

// Envelope is the uniform {status, message} wrapper every query returns.
// Failures are carried as values, not raised errors; the HTTP layer copies
// Status into the response status line without interpreting it.
type Envelope struct {
	Status  int `json:"status"`
	Message any `json:"message"`
}

// Store is the narrow read interface the service queries. *database.Queries
// satisfies it; tests plug in fakes.
type Store interface {
	GetAllPosts(ctx context.Context) ([]database.PostRow, error)
	GetPostByID(ctx context.Context, id int64) (database.PostRow, error)
	GetLatestPost(ctx context.Context) (database.PostRow, error)
}

// Service owns the mapping from raw store records to API entities. No other
// component constructs entities from rows.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListSnippets returns every post as a snippet, newest first.
func (s *Service) ListSnippets(ctx context.Context) Envelope {
	rows, err := s.store.GetAllPosts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("listing posts failed")
		return Envelope{Status: http.StatusInternalServerError, Message: err.Error()}
	}

	snippets := make([]models.PostSnippet, 0, len(rows))
	for _, row := range rows {
		snippets = append(snippets, s.mapSnippet(row))
	}
	return Envelope{Status: http.StatusOK, Message: snippets}
}

// GetPostByID returns the full post with the given id.
func (s *Service) GetPostByID(ctx context.Context, id int64) Envelope {
	row, err := s.store.GetPostByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Envelope{Status: http.StatusNotFound, Message: "Post not found."}
	}
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("reading post failed")
		return Envelope{Status: http.StatusInternalServerError, Message: err.Error()}
	}
	return Envelope{Status: http.StatusOK, Message: s.mapPost(row)}
}

// GetLatestPost returns the most recent full post. An empty store answers
// 404, same as an unknown id.
func (s *Service) GetLatestPost(ctx context.Context) Envelope {
	row, err := s.store.GetLatestPost(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return Envelope{Status: http.StatusNotFound, Message: "Post not found."}
	}
	if err != nil {
		log.Error().Err(err).Msg("reading latest post failed")
		return Envelope{Status: http.StatusInternalServerError, Message: err.Error()}
	}
	return Envelope{Status: http.StatusOK, Message: s.mapPost(row)}
}

func (s *Service) mapSnippet(row database.PostRow) models.PostSnippet {
	image := row.Image
	if image == "" {
		image = firstContentImage(row.En)
	}
	return models.NewPostSnippet(row.ID, row.Date, image, row.Title, models.Category(row.Category))
}

func (s *Service) mapPost(row database.PostRow) models.Post {
	image := row.Image
	if image == "" {
		image = firstContentImage(row.En)
	}
	return models.NewPost(row.ID, row.Date, image, row.Title, models.Category(row.Category), row.En, row.Pl, row.Pt)
}

// firstContentImage pulls the src of the first <img> out of a post body so
// records without a cover image still get a card picture.
func firstContentImage(body string) string {
	if body == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img").First().Attr("src")
	// Bodies reference served paths; stored images are bare file names.
	return strings.TrimPrefix(src, "/assets/")
}
