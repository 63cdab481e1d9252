package domain

import "strings"

// Category classifies a post into one of the fixed site sections.
type Category string

const (
	// CategoryFrontend groups posts about client-side work.
	CategoryFrontend Category = "frontend"
	// CategoryBackend groups posts about server-side work.
	CategoryBackend Category = "backend"
	// CategoryInfra groups posts about infrastructure and operations.
	CategoryInfra Category = "infra"
	// CategoryEtc is the catch-all bucket for everything else.
	CategoryEtc Category = "etc"
)

// Categories returns the enumeration members in display order. A fresh slice
// is returned so callers can filter or reorder without affecting others.
func Categories() []Category {
	return []Category{CategoryFrontend, CategoryBackend, CategoryInfra, CategoryEtc}
}

// NormalizeCategory coerces arbitrary input into an enumeration member.
// Input is lowercased and trimmed before the membership test; anything
// outside the set maps to CategoryEtc.
func NormalizeCategory(input string) Category {
	candidate := Category(strings.ToLower(strings.TrimSpace(input)))
	switch candidate {
	case CategoryFrontend, CategoryBackend, CategoryInfra, CategoryEtc:
		return candidate
	default:
		return CategoryEtc
	}
}

// IsValidCategory reports whether value is an exact enumeration member.
// Unlike NormalizeCategory it performs no case folding or trimming; callers
// validating external input get a strict membership answer.
func IsValidCategory(value string) bool {
	switch Category(value) {
	case CategoryFrontend, CategoryBackend, CategoryInfra, CategoryEtc:
		return true
	default:
		return false
	}
}
