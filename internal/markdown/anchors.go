package markdown

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// headingAnchorTransformer appends an in-page link to every heading,
// pointing at the heading's own identifier, so rendered headings carry a
// clickable anchor. Headings without an identifier are left untouched.
type headingAnchorTransformer struct{}

var _ parser.ASTTransformer = (*headingAnchorTransformer)(nil)

func (t *headingAnchorTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		id := headingID(heading)
		if id == "" {
			return ast.WalkSkipChildren, nil
		}

		link := ast.NewLink()
		link.Destination = []byte("#" + id)
		link.SetAttributeString("class", []byte("anchor"))
		link.AppendChild(link, ast.NewString([]byte("#")))
		heading.AppendChild(heading, link)
		return ast.WalkSkipChildren, nil
	})
}

func headingID(heading *ast.Heading) string {
	value, ok := heading.AttributeString("id")
	if !ok {
		return ""
	}
	switch id := value.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	default:
		return ""
	}
}
