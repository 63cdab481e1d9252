package render

import (
	"fmt"
	"sort"
	"strings"
)

// Dump returns an indented textual outline of the tree, useful for preview
// tooling and debugging.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch v := n.(type) {
	case Text:
		fmt.Fprintf(b, "%stext %q\n", indent, string(v))
	case Number:
		fmt.Fprintf(b, "%snumber %s\n", indent, ExtractText(v))
	case Fragment:
		for _, child := range v {
			dump(b, child, depth)
		}
	case *Element:
		if v == nil {
			return
		}
		fmt.Fprintf(b, "%s<%s%s>\n", indent, v.Kind, dumpAttrs(v.Attrs))
		for _, child := range v.Children {
			dump(b, child, depth+1)
		}
	case *CodeBlock:
		if v == nil {
			return
		}
		lang := v.Language
		if lang == "" {
			lang = "plain"
		}
		fmt.Fprintf(b, "%s<codeblock %s>\n", indent, lang)
		for _, child := range v.Children {
			dump(b, child, depth+1)
		}
	}
}

func dumpAttrs(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, " %s=%q", key, attrs[key])
	}
	return b.String()
}
