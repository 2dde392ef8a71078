package mock

import "github.com/fwojciec/orgscout"

var _ orgscout.MainTextExtractor = (*MainTextExtractor)(nil)

// MainTextExtractor is a mock implementation of orgscout.MainTextExtractor.
type MainTextExtractor struct {
	MainTextFn func(html string) (string, error)
}

func (e *MainTextExtractor) MainText(html string) (string, error) {
	return e.MainTextFn(html)
}

var _ orgscout.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of orgscout.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(text string) string
}

func (s *Sanitizer) Sanitize(text string) string {
	return s.SanitizeFn(text)
}
