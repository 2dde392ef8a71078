package ahocorasick

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/orgscout"
)

// Ensure NameFilter implements orgscout.NameFilter.
var _ orgscout.NameFilter = (*NameFilter)(nil)

// Name length bounds in characters.
const (
	MinNameLength       = 3
	MaxEntityNameLength = 300
	MaxInlineNameLength = 200
)

// Word count bounds for names without an indicator keyword.
const (
	MinNameWords = 2
	MaxNameWords = 12
)

// DefaultDisallowedTerms are site-chrome words and phrases. A name that
// contains one of them as a whole word or phrase is rejected.
var DefaultDisallowedTerms = []string{
	"home", "about", "about us", "contact", "contact us", "login", "log in",
	"sign in", "register", "search", "menu", "main menu", "navigation",
	"footer", "header", "sidebar", "copyright", "privacy", "terms", "policy",
	"library", "admissions", "tuition", "financial aid", "bookstore",
	"directory", "calendar", "news", "events", "sitemap", "site map",
	"back to top", "skip to", "skip to content", "main content", "click here",
	"read more", "learn more", "see more", "view all", "show all",
	"student services", "my apps", "faculty & staff", "faculty and staff",
	"campus map", "apply now", "dining", "parking",
}

// DefaultIndicatorKeywords mark a text as an organization name regardless
// of its word count. Matched as substrings.
var DefaultIndicatorKeywords = []string{
	"club", "society", "association", "organization", "organisation", "group",
	"team", "council", "committee", "union", "fraternity", "sorority", "honor",
	"student government", "chapter", "guild", "fellowship", "league",
	"coalition", "ministry", "volunteer", "alliance", "ensemble", "choir",
}

// institutionWords make up texts like "University" or "College of Education"
// that name the institution rather than an organization.
var institutionWords = map[string]bool{
	"campus": true, "university": true, "college": true, "school": true,
	"education": true, "academic": true, "academics": true, "institute": true,
	"community": true, "state": true, "the": true, "of": true, "and": true,
	"&": true, "at": true, "for": true, "in": true,
}

// NameFilter decides whether text plausibly names an organization.
type NameFilter struct {
	disallow   *matcher
	indicators *matcher
}

// NewNameFilter returns a filter using the default term lists.
func NewNameFilter() *NameFilter {
	return NewNameFilterWithTerms(DefaultDisallowedTerms, DefaultIndicatorKeywords)
}

// NewNameFilterWithTerms returns a filter with custom disallow and indicator lists.
func NewNameFilterWithTerms(disallowed, indicators []string) *NameFilter {
	padded := make([]string, 0, len(disallowed))
	for _, term := range disallowed {
		if w := wordText(term); w != "  " && w != " " {
			padded = append(padded, w)
		}
	}
	lowered := make([]string, 0, len(indicators))
	for _, kw := range indicators {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			lowered = append(lowered, kw)
		}
	}
	return &NameFilter{
		disallow:   newMatcher(padded),
		indicators: newMatcher(lowered),
	}
}

// LooksLikeEntityName applies the block-level length bound.
func (f *NameFilter) LooksLikeEntityName(text string) bool {
	return f.looksLike(text, MaxEntityNameLength)
}

// LooksLikeInlineName applies the tighter bound used for link text.
func (f *NameFilter) LooksLikeInlineName(text string) bool {
	return f.looksLike(text, MaxInlineNameLength)
}

func (f *NameFilter) looksLike(text string, maxLen int) bool {
	text = strings.TrimSpace(text)
	n := utf8.RuneCountInString(text)
	if n < MinNameLength || n > maxLen {
		return false
	}
	if !hasLetter(text) {
		return false
	}

	words := wordText(text)
	if f.disallow.contains(words) {
		return false
	}
	if institutionOnly(words) {
		return false
	}

	if f.indicators.contains(strings.ToLower(text)) {
		return true
	}
	count := len(strings.Fields(text))
	return count >= MinNameWords && count <= MaxNameWords
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func institutionOnly(words string) bool {
	fields := strings.Fields(words)
	if len(fields) == 0 {
		return true
	}
	for _, w := range fields {
		if !institutionWords[w] {
			return false
		}
	}
	return true
}
