// Package blog is the data layer behind a static content site: it ingests a
// directory of markdown documents carrying YAML frontmatter and exposes a
// normalized, queryable view of posts to a presentation layer.
package blog

import (
	"github.com/goliatone/go-blog/domain"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/posts"
	"github.com/goliatone/go-blog/render"
)

// PostService exports the query service contract for consumers of the blog
// package.
type PostService = posts.Service

// Category re-exports the classification enumeration.
type Category = domain.Category

type (
	// FrontMatter re-exports the normalized post metadata record.
	FrontMatter = posts.FrontMatter
	// PostListItem re-exports the listing entry type.
	PostListItem = posts.PostListItem
	// RenderedPost re-exports the single-post projection.
	RenderedPost = posts.RenderedPost
	// CategoryCount re-exports the category aggregation entry.
	CategoryCount = posts.CategoryCount
)

// ErrPostNotFound re-exports the not-found sentinel for errors.Is checks.
var ErrPostNotFound = posts.ErrPostNotFound

// Module is the top level blog runtime façade.
type Module struct {
	cfg   Config
	posts *posts.Service
}

// New constructs a blog module using the provided configuration.
func New(cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var provider logging.LoggerProvider
	if cfg.Logging.Enabled {
		p, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		provider = p
	}

	parserOptions := markdown.ParseOptions{
		HardWraps:      cfg.Markdown.HardWraps,
		HeadingAnchors: cfg.Markdown.HeadingAnchors,
	}

	service, err := posts.NewService(posts.Config{
		ContentDir:   cfg.Content.Dir,
		Extension:    cfg.Content.Extension,
		DefaultTitle: cfg.Content.DefaultTitle,
		Parser:       &parserOptions,
		Logger:       logging.ModuleLogger(provider, "blog.posts"),
	})
	if err != nil {
		return nil, err
	}

	return &Module{cfg: cfg, posts: service}, nil
}

// Posts returns the configured query service.
func (m *Module) Posts() *PostService {
	return m.posts
}

// NewCopyButton builds a copy affordance wired to the module's configured
// reset delay.
func (m *Module) NewCopyButton(clipboard render.Clipboard) *render.CopyButton {
	return render.NewCopyButton(render.CopyButtonConfig{
		Clipboard:  clipboard,
		ResetDelay: m.cfg.Copy.ResetDelay,
	})
}
