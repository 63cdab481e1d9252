// Package render models the renderable structure produced from a post body.
//
// The tree is deliberately decoupled from the parser's AST so presentation
// layers consume a small, stable set of node variants instead of importing
// the markdown engine.
package render

import (
	"strconv"
	"strings"
)

// Node is the tagged-variant marker implemented by every tree member.
type Node interface {
	node()
}

// Text is a leaf node carrying literal text.
type Text string

// Number is a leaf node carrying a numeric value.
type Number float64

// Fragment is an ordered sequence of sibling nodes.
type Fragment []Node

// Element is a composite node with a markup kind, optional attributes, and
// ordered children.
type Element struct {
	Kind     string
	Attrs    map[string]string
	Children []Node
}

// CodeBlock is the interactive replacement for preformatted regions. Its
// children hold the code text; Text exposes the payload consumed by the
// copy affordance.
type CodeBlock struct {
	Language string
	Children []Node
}

func (Text) node()       {}
func (Number) node()     {}
func (Fragment) node()   {}
func (*Element) node()   {}
func (*CodeBlock) node() {}

// Text returns the plain-text payload of the block.
func (c *CodeBlock) Text() string {
	if c == nil {
		return ""
	}
	return ExtractText(Fragment(c.Children))
}

// ExtractText projects any node into plain text: text and numeric leaves
// yield their string form, sequences and composites concatenate their
// members, and anything else yields the empty string. The projection is
// pure and terminates on any finite tree.
func ExtractText(n Node) string {
	switch v := n.(type) {
	case Text:
		return string(v)
	case Number:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case Fragment:
		var b strings.Builder
		for _, child := range v {
			b.WriteString(ExtractText(child))
		}
		return b.String()
	case *Element:
		if v == nil {
			return ""
		}
		return ExtractText(Fragment(v.Children))
	case *CodeBlock:
		if v == nil {
			return ""
		}
		return ExtractText(Fragment(v.Children))
	default:
		return ""
	}
}
