// Package ahocorasick implements keyword-table classification and the
// organization name predicate on top of github.com/cloudflare/ahocorasick.
//
// A cloudflare Matcher keeps per-match bookkeeping inside the automaton, so
// every type here serializes calls to Match.
package ahocorasick

import (
	"strings"
	"sync"
	"unicode"

	"github.com/cloudflare/ahocorasick"
)

// matcher wraps an automaton with a lock and remembers whether it is empty.
type matcher struct {
	mu sync.Mutex
	m  *ahocorasick.Matcher
}

func newMatcher(keywords []string) *matcher {
	if len(keywords) == 0 {
		return &matcher{}
	}
	return &matcher{m: ahocorasick.NewStringMatcher(keywords)}
}

// match returns the indices of the keywords found in text.
func (m *matcher) match(text string) []int {
	if m.m == nil || text == "" {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.m.Match([]byte(text))
}

// contains reports whether any keyword occurs in text.
func (m *matcher) contains(text string) bool {
	return len(m.match(text)) > 0
}

// wordText lowercases s, turns every rune that is not a letter, digit, '&'
// or apostrophe into a space and pads the result with single spaces. Terms
// padded the same way then match on word boundaries only.
func wordText(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '&' || r == '\'' {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return " " + strings.Join(strings.Fields(mapped), " ") + " "
}
