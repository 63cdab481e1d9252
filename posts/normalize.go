package posts

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/goliatone/go-blog/domain"
)

// CanonicalTimeFormat is the textual timestamp form used across FrontMatter.
// All normalized times are UTC, so the trailing Z is literal.
const CanonicalTimeFormat = "2006-01-02T15:04:05.000Z"

// EpochTimestamp is the fallback for posts without a usable creation date.
var EpochTimestamp = time.Unix(0, 0).UTC().Format(CanonicalTimeFormat)

// normalizeFrontMatter coerces the raw metadata mapping into FrontMatter.
// Every field has a deterministic fallback, so the function is total over
// all inputs and never fails. titleFallback replaces an absent or empty
// title: the listing path passes a literal default, the single-post path
// passes the document's slug.
func normalizeFrontMatter(raw map[string]any, titleFallback string) FrontMatter {
	fm := FrontMatter{Title: titleFallback}

	if title := stringValue(raw["title"]); title != "" {
		fm.Title = title
	}

	if created, ok := firstValue(raw, "createdAt", "date"); ok {
		fm.CreatedAt = normalizeDate(created)
	} else {
		fm.CreatedAt = EpochTimestamp
	}

	if updated, ok := firstValue(raw, "updatedAt", "createdAt", "date"); ok {
		fm.UpdatedAt = normalizeDate(updated)
	} else {
		fm.UpdatedAt = fm.CreatedAt
	}

	fm.Category = domain.NormalizeCategory(stringValue(raw["category"]))
	fm.Description = stringValue(raw["description"])
	fm.Tags = stringSlice(raw["tags"])

	return fm
}

// normalizeDate emits the canonical textual form for any value it can
// interpret as a date. Unparseable strings are returned unchanged rather
// than replaced; consumers treat the field as canonical-format but the
// original value survives when coercion fails.
func normalizeDate(value any) string {
	if t, ok := value.(time.Time); ok {
		return t.UTC().Format(CanonicalTimeFormat)
	}

	s := stringValue(value)
	if s == "" {
		return EpochTimestamp
	}

	parsed, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return s
	}
	return parsed.UTC().Format(CanonicalTimeFormat)
}

// firstValue returns the first present, non-nil value among keys.
func firstValue(raw map[string]any, keys ...string) (any, bool) {
	for _, key := range keys {
		if value, ok := raw[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

// stringValue coerces an arbitrary scalar into a trimmed string.
func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// stringSlice materializes tags only when the raw value is itself a
// sequence; scalars and absent values yield nil.
func stringSlice(value any) []string {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringValue(item))
		}
		return out
	default:
		return nil
	}
}
