package render

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// Build projects a parsed markdown document into a render tree. source must
// be the same bytes the AST was parsed from; goldmark nodes reference
// segments of it. Preformatted regions come back as the interactive
// CodeBlock variant.
func Build(doc ast.Node, source []byte) Node {
	if doc == nil {
		return Fragment(nil)
	}
	return convert(doc, source)
}

func convert(n ast.Node, source []byte) Node {
	switch v := n.(type) {
	case *ast.Text:
		value := Text(v.Segment.Value(source))
		if v.SoftLineBreak() || v.HardLineBreak() {
			return Fragment{value, Text("\n")}
		}
		return value
	case *ast.String:
		return Text(v.Value)
	case *ast.TextBlock:
		// Transparent container (e.g. inside list items).
		return Fragment(children(n, source))
	case *ast.FencedCodeBlock:
		return &CodeBlock{
			Language: string(v.Language(source)),
			Children: []Node{Text(blockLines(n, source))},
		}
	case *ast.CodeBlock:
		return &CodeBlock{
			Children: []Node{Text(blockLines(n, source))},
		}
	case *ast.HTMLBlock:
		return &Element{Kind: "html", Children: []Node{Text(blockLines(n, source))}}
	case *ast.RawHTML:
		var buf bytes.Buffer
		for i := 0; i < v.Segments.Len(); i++ {
			seg := v.Segments.At(i)
			buf.Write(seg.Value(source))
		}
		return &Element{Kind: "html", Children: []Node{Text(buf.String())}}
	case *ast.AutoLink:
		url := string(v.URL(source))
		return &Element{
			Kind:     "a",
			Attrs:    map[string]string{"href": url},
			Children: []Node{Text(v.Label(source))},
		}
	default:
		return element(n, source)
	}
}

func element(n ast.Node, source []byte) Node {
	el := &Element{Children: children(n, source)}

	switch v := n.(type) {
	case *ast.Document:
		el.Kind = "article"
	case *ast.Heading:
		el.Kind = "h" + strconv.Itoa(v.Level)
		if id := attrString(n, "id"); id != "" {
			el.Attrs = map[string]string{"id": id}
		}
	case *ast.Paragraph:
		el.Kind = "p"
	case *ast.Blockquote:
		el.Kind = "blockquote"
	case *ast.ThematicBreak:
		el.Kind = "hr"
	case *ast.Emphasis:
		if v.Level >= 2 {
			el.Kind = "strong"
		} else {
			el.Kind = "em"
		}
	case *ast.CodeSpan:
		el.Kind = "code"
	case *ast.List:
		if v.IsOrdered() {
			el.Kind = "ol"
			if v.Start > 1 {
				el.Attrs = map[string]string{"start": strconv.Itoa(v.Start)}
			}
		} else {
			el.Kind = "ul"
		}
	case *ast.ListItem:
		el.Kind = "li"
	case *ast.Link:
		el.Kind = "a"
		el.Attrs = map[string]string{"href": string(v.Destination)}
		if len(v.Title) > 0 {
			el.Attrs["title"] = string(v.Title)
		}
		if class := attrString(n, "class"); class != "" {
			el.Attrs["class"] = class
		}
	case *ast.Image:
		el.Kind = "img"
		el.Attrs = map[string]string{"src": string(v.Destination)}
		if len(v.Title) > 0 {
			el.Attrs["title"] = string(v.Title)
		}
	case *east.Table:
		el.Kind = "table"
	case *east.TableHeader:
		el.Kind = "tr"
	case *east.TableRow:
		el.Kind = "tr"
	case *east.TableCell:
		if _, ok := n.Parent().(*east.TableHeader); ok {
			el.Kind = "th"
		} else {
			el.Kind = "td"
		}
	case *east.TaskCheckBox:
		el.Kind = "input"
		el.Attrs = map[string]string{"type": "checkbox"}
		if v.IsChecked {
			el.Attrs["checked"] = "checked"
		}
	case *east.Strikethrough:
		el.Kind = "del"
	default:
		el.Kind = strings.ToLower(n.Kind().String())
	}

	return el
}

func children(n ast.Node, source []byte) []Node {
	var out []Node
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		out = append(out, convert(child, source))
	}
	return out
}

func blockLines(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func attrString(n ast.Node, name string) string {
	value, ok := n.AttributeString(name)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	default:
		return ""
	}
}
