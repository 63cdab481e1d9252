package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// LoaderConfig configures how documents are discovered within the content
// directory.
type LoaderConfig struct {
	// Extension selects recognized document files. Defaults to ".md".
	Extension string
}

// Loader enumerates blog documents on a filesystem and reads them by slug.
// The slug is the filename with the recognized extension removed.
type Loader struct {
	fsys fs.FS
	ext  string
}

// NewLoader constructs a Loader over the provided filesystem.
func NewLoader(fsys fs.FS, cfg LoaderConfig) *Loader {
	ext := strings.TrimSpace(cfg.Extension)
	if ext == "" {
		ext = ".md"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return &Loader{fsys: fsys, ext: ext}
}

// Document pairs a slug with the raw bytes read from disk.
type Document struct {
	Slug   string
	Source []byte
}

// Slugs returns the slug of every recognized document in directory order.
// Sub-directories and files with other extensions are silently skipped.
func (l *Loader) Slugs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("markdown loader: read content dir: %w", err)
	}

	var slugs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), l.ext) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(entry.Name(), l.ext))
	}
	return slugs, nil
}

// Read returns the raw contents of the document identified by slug. A
// missing file surfaces as fs.ErrNotExist so callers can map it to a
// not-found outcome.
func (l *Loader) Read(ctx context.Context, slug string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := slug + l.ext
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("markdown loader: read %s: %w", name, err)
	}
	return &Document{Slug: slug, Source: data}, nil
}

// ReadAll reads every recognized document in scan order, checking the
// context between reads.
func (l *Loader) ReadAll(ctx context.Context) ([]*Document, error) {
	slugs, err := l.Slugs(ctx)
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(slugs))
	for _, slug := range slugs {
		doc, err := l.Read(ctx, slug)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// PrepareFilesystem stats dir and returns a filesystem rooted at it.
func PrepareFilesystem(dir string) (fs.FS, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("markdown loader: stat content dir %s: %w", dir, err)
	}
	return os.DirFS(dir), nil
}
