package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ParseOptions tweak the behaviour of the goldmark engine.
type ParseOptions struct {
	// HardWraps renders single newlines as <br> in HTML output.
	HardWraps bool
	// HeadingAnchors appends a self-link to every heading that received an
	// identifier.
	HeadingAnchors bool
}

// DefaultParseOptions returns the options the content pipeline uses when the
// caller does not override them.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{HeadingAnchors: true}
}

// GoldmarkParser wraps a configured goldmark engine. The parser is stateless
// so a single instance can be reused across queries without locking.
type GoldmarkParser struct {
	engine goldmark.Markdown
}

// NewGoldmarkParser builds the engine with the GFM pieces the content set
// relies on (tables, task lists, strikethrough, autolinks) plus automatic
// heading identifiers and, when enabled, heading self-links.
func NewGoldmarkParser(opts ParseOptions) *GoldmarkParser {
	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}
	if opts.HeadingAnchors {
		// Heading identifiers are assigned during parsing, so the anchor
		// transformer always sees them.
		parserOptions = append(parserOptions, parser.WithASTTransformers(
			util.Prioritized(&headingAnchorTransformer{}, 900),
		))
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithExtensions(
			extension.Table,
			extension.TaskList,
			extension.Strikethrough,
			extension.Linkify,
		),
		goldmark.WithParserOptions(parserOptions...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	return &GoldmarkParser{engine: goldmark.New(engineOptions...)}
}

// ParseAST parses source into a goldmark document node. The returned node
// references segments of source, so both must be kept together.
func (p *GoldmarkParser) ParseAST(source []byte) ast.Node {
	return p.engine.Parser().Parse(text.NewReader(source))
}

// ParseHTML renders source into HTML.
func (p *GoldmarkParser) ParseHTML(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	return buf.Bytes(), nil
}
