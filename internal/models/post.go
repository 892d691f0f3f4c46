// SPDX-License-Identifier: AGPL-3.0-only
package models

import "time"

// Category is the small integer code stored on a post record.
type Category int

const (
	CategoryUnclassified Category = iota
	CategoryThoughts
	CategoryTravel
	CategoryTech
)

var categoryLabels = map[Category]string{
	CategoryUnclassified: "Unclassified",
	CategoryThoughts:     "Thoughts",
	CategoryTravel:       "Travel",
	CategoryTech:         "Tech",
}

// Label returns the display name for a category code. Unknown codes fall
// back to the unclassified label so seed data with bad codes still renders.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryUnclassified]
}

// Languages is the closed set of content languages a post carries.
var Languages = []string{"en", "pl", "pt"}

// DefaultLanguage is used when a caller asks for a language the post does
// not carry.
const DefaultLanguage = "en"

// PostSnippet is the lightweight list-view representation of a post.
// DateString and Category are derived at construction and never stored.
type PostSnippet struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	DateString string    `json:"dateString"`
	Image      string    `json:"image"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
}

// NewPostSnippet builds a snippet with its derived fields filled in.
func NewPostSnippet(id int64, date time.Time, image, title string, category Category) PostSnippet {
	return PostSnippet{
		ID:         id,
		Date:       date,
		DateString: FormatDate(date),
		Image:      image,
		Title:      title,
		Category:   category.Label(),
	}
}

// Post is the full representation, a snippet plus per-language body content.
type Post struct {
	PostSnippet
	Content map[string]string `json:"content"`
}

// NewPost builds a post. Content always carries exactly the three language
// keys; a missing body is an empty string, never an absent key.
func NewPost(id int64, date time.Time, image, title string, category Category, en, pl, pt string) Post {
	return Post{
		PostSnippet: NewPostSnippet(id, date, image, title, category),
		Content: map[string]string{
			"en": en,
			"pl": pl,
			"pt": pt,
		},
	}
}

// Snippet degrades a post to its list-view representation.
func (p Post) Snippet() PostSnippet {
	return p.PostSnippet
}

// ContentByLanguage returns the body for lang, falling back to the default
// language when the requested one is missing or empty.
func (p Post) ContentByLanguage(lang string) string {
	if body, ok := p.Content[lang]; ok && body != "" {
		return body
	}
	return p.Content[DefaultLanguage]
}

// FormatDate renders a timestamp as "2 Jan 2006", the format the cards and
// the index page display.
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006")
}
