// Package posts exposes the query surface over a directory of markdown
// documents: listing, category grouping, and single-post rendering.
package posts

import (
	"github.com/goliatone/go-blog/domain"
	"github.com/goliatone/go-blog/render"
)

// FrontMatter is the normalized metadata attached to every post. CreatedAt
// and UpdatedAt hold the canonical timestamp form unless the source value
// could not be parsed, in which case the original string is preserved
// unchanged.
type FrontMatter struct {
	Title       string          `json:"title"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
	Category    domain.Category `json:"category"`
	Description string          `json:"description,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
}

// PostListItem pairs a slug with its normalized metadata.
type PostListItem struct {
	Slug        string      `json:"slug"`
	FrontMatter FrontMatter `json:"frontMatter"`
}

// RenderedPost is the single-post projection: normalized metadata plus the
// render tree produced from the body.
type RenderedPost struct {
	FrontMatter FrontMatter `json:"frontMatter"`
	Content     render.Node `json:"-"`
}

// CategoryCount aggregates how many posts fall into a category.
type CategoryCount struct {
	Category domain.Category `json:"category"`
	Count    int             `json:"count"`
}
