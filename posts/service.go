package posts

import (
	"context"
	"errors"
	"io/fs"
	"sort"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-blog/domain"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/render"
)

// Config controls where post documents live and how they are interpreted.
type Config struct {
	// ContentDir is the directory holding post documents. Ignored when FS
	// is supplied.
	ContentDir string
	// Extension selects recognized files. Defaults to ".md".
	Extension string
	// DefaultTitle replaces an absent title in listings. Defaults to
	// "Untitled".
	DefaultTitle string
	// Parser overrides the markdown engine options. Nil selects the
	// pipeline defaults (heading anchors enabled).
	Parser *markdown.ParseOptions
	// FS overrides the filesystem rooted at ContentDir. Used by tests and
	// embedded content.
	FS fs.FS
	// Logger receives per-query diagnostics. Defaults to a no-op logger.
	Logger logging.Logger
}

const defaultTitle = "Untitled"

// Service is the query surface consumed by the presentation layer. Every
// query recomputes its result from the on-disk content set; there is no
// cache and no write path, so results always reflect current disk state.
type Service struct {
	loader       *markdown.Loader
	parser       *markdown.GoldmarkParser
	defaultTitle string
	logger       logging.Logger
}

// NewService constructs the query service from the supplied configuration.
func NewService(cfg Config) (*Service, error) {
	fsys := cfg.FS
	if fsys == nil {
		prepared, err := markdown.PrepareFilesystem(cfg.ContentDir)
		if err != nil {
			return nil, err
		}
		fsys = prepared
	}

	title := cfg.DefaultTitle
	if title == "" {
		title = defaultTitle
	}

	parserOptions := markdown.DefaultParseOptions()
	if cfg.Parser != nil {
		parserOptions = *cfg.Parser
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Service{
		loader:       markdown.NewLoader(fsys, markdown.LoaderConfig{Extension: cfg.Extension}),
		parser:       markdown.NewGoldmarkParser(parserOptions),
		defaultTitle: title,
		logger:       logger,
	}, nil
}

// ListPosts returns every post's metadata ordered by creation time, newest
// first. Posts with equal timestamps keep their scan order.
func (s *Service) ListPosts(ctx context.Context) ([]PostListItem, error) {
	docs, err := s.loader.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]PostListItem, 0, len(docs))
	for _, doc := range docs {
		meta, _ := markdown.Split(doc.Source)
		items = append(items, PostListItem{
			Slug:        doc.Slug,
			FrontMatter: normalizeFrontMatter(meta, s.defaultTitle),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].FrontMatter.CreatedAt > items[j].FrontMatter.CreatedAt
	})

	s.logger.Debug("listed posts", "count", len(items))
	return items, nil
}

// GetPostSlugs returns every recognized document slug in scan order.
func (s *Service) GetPostSlugs(ctx context.Context) ([]string, error) {
	return s.loader.Slugs(ctx)
}

// GetPostBySlug loads, normalizes, and renders a single post. A slug with
// no matching document fails with ErrPostNotFound; the slug doubles as the
// title fallback.
func (s *Service) GetPostBySlug(ctx context.Context, postSlug string) (*RenderedPost, error) {
	if !slug.IsValid(postSlug) {
		s.logger.Warn("rejected malformed slug", "slug", postSlug)
		return nil, &PostNotFoundError{Slug: postSlug}
	}

	doc, err := s.loader.Read(ctx, postSlug)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &PostNotFoundError{Slug: postSlug}
		}
		return nil, err
	}

	meta, body := markdown.Split(doc.Source)
	tree := render.Build(s.parser.ParseAST(body), body)

	return &RenderedPost{
		FrontMatter: normalizeFrontMatter(meta, postSlug),
		Content:     tree,
	}, nil
}

// ListCategories aggregates post counts per category, covering every
// enumeration member in display order even when its count is zero.
func (s *Service) ListCategories(ctx context.Context) ([]CategoryCount, error) {
	items, err := s.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Category]int, len(items))
	for _, item := range items {
		counts[item.FrontMatter.Category]++
	}

	members := domain.Categories()
	out := make([]CategoryCount, 0, len(members))
	for _, category := range members {
		out = append(out, CategoryCount{Category: category, Count: counts[category]})
	}
	return out, nil
}

// ListPostsByCategory filters ListPosts by exact category match, inheriting
// its ordering.
func (s *Service) ListPostsByCategory(ctx context.Context, category domain.Category) ([]PostListItem, error) {
	items, err := s.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]PostListItem, 0, len(items))
	for _, item := range items {
		if item.FrontMatter.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// IsValidCategory reports whether value names an enumeration member
// exactly. External input should pass this check before being trusted as a
// Category.
func (s *Service) IsValidCategory(value string) bool {
	return domain.IsValidCategory(value)
}
