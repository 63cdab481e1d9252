package posts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPostNotFound reports a slug with no matching document.
	ErrPostNotFound = errors.New("posts: post not found")
)

// PostNotFoundError carries the slug that failed to resolve.
type PostNotFoundError struct {
	Slug string
}

func (e *PostNotFoundError) Error() string {
	if e == nil {
		return ErrPostNotFound.Error()
	}
	slug := strings.TrimSpace(e.Slug)
	if slug != "" {
		return fmt.Sprintf("%s: slug=%s", ErrPostNotFound.Error(), slug)
	}
	return ErrPostNotFound.Error()
}

func (e *PostNotFoundError) Unwrap() error {
	return ErrPostNotFound
}
