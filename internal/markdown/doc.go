// Package markdown discovers blog documents on the filesystem, splits their
// frontmatter from the body, and parses the body with goldmark.
package markdown
