package markdown

import (
	"bytes"

	"github.com/adrg/frontmatter"
)

// Split separates a document into its raw frontmatter mapping and markdown
// body. A document without a metadata block is valid: the mapping is empty
// and the body is the whole input. A malformed block degrades the same way
// rather than failing; field-level problems belong to the normalizer, never
// a reason to reject a document.
func Split(source []byte) (map[string]any, []byte) {
	var meta map[string]any

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return map[string]any{}, source
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, body
}
