// SPDX-License-Identifier: AGPL-3.0-only
package webclient

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fluffyriot/globeblog/internal/models"
)

// SortPostSnippets moves the element at pivot to the front and orders the
// remainder by date descending. The input slice is not modified. Ordering
// among equal dates past the pivot is unspecified.
func SortPostSnippets(snippets []models.PostSnippet, pivot int) []models.PostSnippet {
	if len(snippets) == 0 {
		return nil
	}
	if pivot < 0 || pivot >= len(snippets) {
		pivot = 0
	}

	alpha := snippets[pivot]

	rest := make([]models.PostSnippet, 0, len(snippets)-1)
	rest = append(rest, snippets[:pivot]...)
	rest = append(rest, snippets[pivot+1:]...)
	sort.Slice(rest, func(i, j int) bool {
		return rest[i].Date.After(rest[j].Date)
	})

	return append([]models.PostSnippet{alpha}, rest...)
}

// BuildCards renders the snippet list as the card-stack markup. The first
// element becomes the enlarged alpha card carrying the three language
// controls; the rest become beta cards stacked behind it, z-index descending
// with position.
func BuildCards(snippets []models.PostSnippet) string {
	var cards strings.Builder

	total := len(snippets)
	for i, snippet := range snippets {
		id := strconv.FormatInt(snippet.ID, 10)

		if i == 0 {
			cards.WriteString(`<div class="card alpha depth-2" id="alpha" style="z-index:` + strconv.Itoa(total) + `" postId=` + id + `>`)
			cards.WriteString(`<div class="card-title-container"><div class="card-title">` + snippet.Title)
			cards.WriteString(`<div class="card-subtitle">` + snippet.Category + `</div></div>`)
			cards.WriteString(`<div class="date">` + snippet.DateString + `</div></div>`)
			cards.WriteString(`<div class="card-img" style="background-image: url('/assets/` + snippet.Image + `')"><div class="card-img-overlay"></div></div>`)
			cards.WriteString(`<div class="card-footer">`)
			cards.WriteString(`<div class="lang" lang="en">ENGLISH</div>`)
			cards.WriteString(`<div class="lang" lang="pl">POLSKI</div>`)
			cards.WriteString(`<div class="lang" lang="pt">PORTUGUÊS</div>`)
			cards.WriteString(`</div></div>`)
		} else {
			cards.WriteString(`<div class="card beta depth-1" style="z-index:` + strconv.Itoa(total-i) + `" postId=` + id + `>`)
			cards.WriteString(`<div class="card-title-container">`)
			cards.WriteString(`<div class="img-ball depth-1" style="background-image:url('/assets/` + snippet.Image + `')"></div>`)
			cards.WriteString(`<div class="card-title">` + snippet.Title)
			cards.WriteString(`<div class="card-subtitle">` + snippet.Category + `</div></div>`)
			cards.WriteString(`<div class="date">` + snippet.DateString + `</div></div></div>`)
		}
	}

	return cards.String()
}
