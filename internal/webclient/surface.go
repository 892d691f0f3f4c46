// SPDX-License-Identifier: AGPL-3.0-only
package webclient

import (
	"sync"
	"time"
)

// ErrorBannerDuration is how long a surfaced error stays visible before it
// dismisses itself.
const ErrorBannerDuration = 3 * time.Second

// Surface is the rendering target the post helper writes into: the mount
// points of the page. Implementations own event wiring for the card markup
// they receive.
type Surface interface {
	SetTitle(title string)
	SetContent(markup string)
	SetStack(cards string)
	ShowLoader()
	HideLoader()
	ShowError(message string)
}

// MemorySurface holds the rendered state in fields. It backs tests and the
// terminal client; a browser adapter would write the same strings into the
// DOM instead.
type MemorySurface struct {
	mu      sync.Mutex
	title   string
	content string
	stack   string
	loading bool
	banner  string

	// dismiss replaces time.AfterFunc in tests.
	dismiss func(time.Duration, func())
}

func NewMemorySurface() *MemorySurface {
	return &MemorySurface{
		dismiss: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

func (s *MemorySurface) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
}

func (s *MemorySurface) SetContent(markup string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = markup
}

func (s *MemorySurface) SetStack(cards string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stack = cards
}

func (s *MemorySurface) ShowLoader() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
}

func (s *MemorySurface) HideLoader() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
}

// ShowError displays a banner and schedules its dismissal.
func (s *MemorySurface) ShowError(message string) {
	s.mu.Lock()
	s.banner = message
	s.mu.Unlock()

	s.dismiss(ErrorBannerDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.banner == message {
			s.banner = ""
		}
	})
}

func (s *MemorySurface) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

func (s *MemorySurface) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

func (s *MemorySurface) Stack() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stack
}

func (s *MemorySurface) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *MemorySurface) Banner() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.banner
}
