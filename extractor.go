package orgscout

import "strings"

// MainTextExtractor extracts the main body text of an HTML page,
// removing boilerplate (nav, footer, sidebar, ads).
type MainTextExtractor interface {
	// MainText returns the main content as plain text, one paragraph per line.
	MainText(html string) (string, error)
}

// Sanitizer removes markup remnants from text destined for output records.
type Sanitizer interface {
	Sanitize(text string) string
}

// MainTextChain tries each extractor in turn and returns the first
// non-empty text. If every extractor fails, the first error is returned.
type MainTextChain []MainTextExtractor

// MainText implements MainTextExtractor.
func (c MainTextChain) MainText(html string) (string, error) {
	var firstErr error
	for _, e := range c {
		text, err := e.MainText(html)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	return "", firstErr
}
