// Package bluemonday cleans extracted description text with the
// bluemonday HTML sanitizer.
package bluemonday

import (
	"html"
	"strings"

	"github.com/fwojciec/orgscout"
	"github.com/microcosm-cc/bluemonday"
)

var _ orgscout.Sanitizer = (*Sanitizer)(nil)

// Sanitizer strips every tag left in a text fragment, drops script and
// style content, decodes entities and collapses whitespace.
// Safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer using bluemonday's strict policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// Sanitize returns text with markup removed.
func (s *Sanitizer) Sanitize(text string) string {
	if text == "" {
		return ""
	}
	clean := s.policy.Sanitize(text)
	clean = html.UnescapeString(clean)
	return strings.Join(strings.Fields(clean), " ")
}
