package article

import (
	"time"
)

// Article is a raw news article as returned by a source adapter. It lives for
// the duration of a single search request and is never persisted, except by the
// optional fetch cache which stores raw provider output verbatim.
type Article struct {
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description,omitempty"`
	URL         string    `bson:"url" json:"url"`
	Source      string    `bson:"source" json:"source"`
	PublishedAt time.Time `bson:"publishedAt" json:"publishedAt,omitempty"`
	Language    string    `bson:"language" json:"language,omitempty"`
}

// Text returns the title and description joined for keyword classification.
func (a Article) Text() string {
	if a.Description == "" {
		return a.Title
	}
	return a.Title + " " + a.Description
}
