package render

import (
	"strings"
	"testing"

	"github.com/goliatone/go-blog/internal/markdown"
)

func buildTree(tb testing.TB, source string) Node {
	tb.Helper()

	parser := markdown.NewGoldmarkParser(markdown.DefaultParseOptions())
	return Build(parser.ParseAST([]byte(source)), []byte(source))
}

func TestBuildDocumentShape(t *testing.T) {
	tree := buildTree(t, "## Title\n\nSome paragraph.\n")

	root, ok := tree.(*Element)
	if !ok || root.Kind != "article" {
		t.Fatalf("expected article root, got %#v", tree)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected heading and paragraph, got %d children", len(root.Children))
	}

	heading, ok := root.Children[0].(*Element)
	if !ok || heading.Kind != "h2" {
		t.Fatalf("expected h2, got %#v", root.Children[0])
	}
	if heading.Attrs["id"] != "title" {
		t.Fatalf("expected heading identifier, got %#v", heading.Attrs)
	}
}

func TestBuildHeadingSelfLink(t *testing.T) {
	tree := buildTree(t, "## Hello World\n")

	heading := findElement(tree, "h2")
	if heading == nil {
		t.Fatalf("heading not found")
	}

	last := heading.Children[len(heading.Children)-1]
	anchor, ok := last.(*Element)
	if !ok || anchor.Kind != "a" {
		t.Fatalf("expected trailing anchor link, got %#v", last)
	}
	if anchor.Attrs["href"] != "#hello-world" {
		t.Fatalf("expected self href, got %#v", anchor.Attrs)
	}
	if anchor.Attrs["class"] != "anchor" {
		t.Fatalf("expected anchor class, got %#v", anchor.Attrs)
	}
}

func TestBuildCodeBlockSubstitution(t *testing.T) {
	tree := buildTree(t, "```go\nfmt.Println(1)\nfmt.Println(2)\n```\n")

	block := findCodeBlock(tree)
	if block == nil {
		t.Fatalf("code block not found")
	}
	if block.Language != "go" {
		t.Fatalf("expected language go, got %q", block.Language)
	}
	if got := block.Text(); got != "fmt.Println(1)\nfmt.Println(2)\n" {
		t.Fatalf("unexpected copy payload: %q", got)
	}
}

func TestBuildInlineRawHTML(t *testing.T) {
	tree := buildTree(t, "Inline <span>markup</span> survives.\n")

	html := findElement(tree, "html")
	if html == nil {
		t.Fatalf("raw html node not found")
	}
	if got := ExtractText(html); got != "<span>" {
		t.Fatalf("expected raw tag payload, got %q", got)
	}
}

func TestBuildHTMLBlock(t *testing.T) {
	tree := buildTree(t, "<div>\nblock content\n</div>\n")

	html := findElement(tree, "html")
	if html == nil {
		t.Fatalf("html block not found")
	}
	if got := ExtractText(html); !strings.Contains(got, "block content") {
		t.Fatalf("expected block payload, got %q", got)
	}
}

func TestBuildTableHeaderCells(t *testing.T) {
	tree := buildTree(t, "| Name | Role |\n| --- | --- |\n| Ada | engineer |\n")

	table := findElement(tree, "table")
	if table == nil {
		t.Fatalf("table not found")
	}

	header := findElement(table, "th")
	if header == nil {
		t.Fatalf("expected header cells to project as th")
	}
	if got := ExtractText(header); got != "Name" {
		t.Fatalf("unexpected header cell text: %q", got)
	}

	body := findElement(table, "td")
	if body == nil {
		t.Fatalf("expected body cells to project as td")
	}
	if got := ExtractText(body); got != "Ada" {
		t.Fatalf("unexpected body cell text: %q", got)
	}
}

func TestBuildLists(t *testing.T) {
	tree := buildTree(t, "1. first\n2. second\n")

	list := findElement(tree, "ol")
	if list == nil {
		t.Fatalf("ordered list not found")
	}
	if len(list.Children) != 2 {
		t.Fatalf("expected two items, got %d", len(list.Children))
	}
	if item, ok := list.Children[0].(*Element); !ok || item.Kind != "li" {
		t.Fatalf("expected list item, got %#v", list.Children[0])
	}
}

func TestBuildExtractTextOverDocument(t *testing.T) {
	tree := buildTree(t, "## Title\n\nline one\nline two\n\n```sh\necho hi\n```\n")

	text := ExtractText(tree)
	for _, want := range []string{"Title", "line one\nline two", "echo hi"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in extracted text, got %q", want, text)
		}
	}
}

func TestBuildNilDocument(t *testing.T) {
	if got := ExtractText(Build(nil, nil)); got != "" {
		t.Fatalf("expected empty projection for nil document, got %q", got)
	}
}

func findElement(n Node, kind string) *Element {
	switch v := n.(type) {
	case *Element:
		if v.Kind == kind {
			return v
		}
		for _, child := range v.Children {
			if found := findElement(child, kind); found != nil {
				return found
			}
		}
	case Fragment:
		for _, child := range v {
			if found := findElement(child, kind); found != nil {
				return found
			}
		}
	}
	return nil
}

func findCodeBlock(n Node) *CodeBlock {
	switch v := n.(type) {
	case *CodeBlock:
		return v
	case *Element:
		for _, child := range v.Children {
			if found := findCodeBlock(child); found != nil {
				return found
			}
		}
	case Fragment:
		for _, child := range v {
			if found := findCodeBlock(child); found != nil {
				return found
			}
		}
	}
	return nil
}
