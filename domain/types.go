package domain

import internaldomain "github.com/goliatone/go-blog/internal/domain"

// Category represents the fixed classification applied to every post.
type Category = internaldomain.Category

const (
	// CategoryFrontend groups posts about client-side work.
	CategoryFrontend = internaldomain.CategoryFrontend
	// CategoryBackend groups posts about server-side work.
	CategoryBackend = internaldomain.CategoryBackend
	// CategoryInfra groups posts about infrastructure and operations.
	CategoryInfra = internaldomain.CategoryInfra
	// CategoryEtc is the catch-all bucket for everything else.
	CategoryEtc = internaldomain.CategoryEtc
)

// Categories returns the enumeration members in display order.
func Categories() []Category {
	return internaldomain.Categories()
}

// NormalizeCategory coerces arbitrary input into an enumeration member,
// defaulting to CategoryEtc.
func NormalizeCategory(input string) Category {
	return internaldomain.NormalizeCategory(input)
}

// IsValidCategory reports whether value is an exact enumeration member.
func IsValidCategory(value string) bool {
	return internaldomain.IsValidCategory(value)
}
