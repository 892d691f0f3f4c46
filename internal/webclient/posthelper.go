// SPDX-License-Identifier: AGPL-3.0-only
package webclient

import (
	"context"
	"strconv"
	"sync"

	"github.com/fluffyriot/globeblog/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type postEnvelope struct {
	Status  int         `json:"status"`
	Message models.Post `json:"message"`
}

type snippetsEnvelope struct {
	Status  int                  `json:"status"`
	Message []models.PostSnippet `json:"message"`
}

// PostHelper drives the card-stack page: it fetches posts, keeps the
// page-session caches and renders into its Surface. State moves from
// "nothing loaded" through "loading" to "post displayed" on every card or
// language click; LoadPost is the only transition.
type PostHelper struct {
	client  *Client
	baseURL string
	surface Surface
	sink    Sink

	mu          sync.Mutex
	snippets    []models.PostSnippet
	currentPost *models.Post
	cancelLoad  context.CancelFunc
	loadGen     uint64
}

func NewPostHelper(client *Client, baseURL string, surface Surface, sink Sink) *PostHelper {
	return &PostHelper{
		client:  client,
		baseURL: baseURL,
		surface: surface,
		sink:    sink,
	}
}

// GetPosts returns the snippet list, fetching it at most once per page
// session. The cached list keeps whatever order the last render left it in.
func (p *PostHelper) GetPosts(ctx context.Context, params map[string]string) ([]models.PostSnippet, error) {
	p.mu.Lock()
	if p.snippets != nil {
		cached := p.snippets
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	var env snippetsEnvelope
	if err := p.client.Get(ctx, BuildURI(p.baseURL, "getposts", params), &env); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.snippets = env.Message
	p.mu.Unlock()

	return env.Message, nil
}

// GetPostByID returns the full post, short-circuiting when the currently
// displayed post already has that id.
func (p *PostHelper) GetPostByID(ctx context.Context, id int64) (models.Post, error) {
	p.mu.Lock()
	if p.currentPost != nil && p.currentPost.ID == id {
		cached := *p.currentPost
		p.mu.Unlock()
		return cached, nil
	}
	p.mu.Unlock()

	var env postEnvelope
	uri := BuildURI(p.baseURL, "getpost", map[string]string{"id": strconv.FormatInt(id, 10)})
	if err := p.client.Get(ctx, uri, &env); err != nil {
		return models.Post{}, err
	}

	post := env.Message
	p.mu.Lock()
	p.currentPost = &post
	p.mu.Unlock()

	return post, nil
}

// InvalidateCache drops the session caches. Nothing calls it during a page
// session; it exists so the session boundary is explicit instead of an
// is-it-nil check scattered around.
func (p *PostHelper) InvalidateCache() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snippets = nil
	p.currentPost = nil
}

// LoadPost loads the post with id, renders it in lang and re-stacks the
// cards with the element at pivot pinned to the front. A second call while
// one is in flight cancels the first; the superseded load leaves the page
// alone. Every failure path hides the loader before surfacing the error.
func (p *PostHelper) LoadPost(ctx context.Context, id int64, lang string, pivot int) error {
	p.surface.ShowLoader()

	loadCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	if p.cancelLoad != nil {
		p.cancelLoad()
	}
	p.cancelLoad = cancel
	p.loadGen++
	gen := p.loadGen
	p.mu.Unlock()

	var post models.Post
	var snippets []models.PostSnippet

	g, gctx := errgroup.WithContext(loadCtx)
	g.Go(func() error {
		var err error
		post, err = p.GetPostByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		snippets, err = p.GetPosts(gctx, nil)
		return err
	})

	if err := g.Wait(); err != nil {
		p.surface.HideLoader()
		if loadCtx.Err() != nil {
			// Superseded by a newer click; the newer load owns the page.
			return loadCtx.Err()
		}
		p.surface.ShowError("Could not load the post. Please try again.")
		return err
	}

	sorted := SortPostSnippets(snippets, pivot)

	// The render happens under the lock: once the ownership check passes, a
	// newer click cannot bump loadGen until this load has written the page.
	p.mu.Lock()
	if p.loadGen != gen || loadCtx.Err() != nil {
		p.mu.Unlock()
		p.surface.HideLoader()
		return context.Canceled
	}
	p.currentPost = &post
	p.snippets = sorted

	p.sink.Fire(Event{
		ID:   uuid.New(),
		Name: "post",
		Params: map[string]string{
			"postId":       strconv.FormatInt(post.ID, 10),
			"postTitle":    post.Title,
			"postLanguage": lang,
		},
	})

	p.surface.SetTitle(post.Title)
	p.surface.SetContent(post.ContentByLanguage(lang))
	p.surface.SetStack(BuildCards(sorted))
	p.surface.HideLoader()
	p.mu.Unlock()
	return nil
}
