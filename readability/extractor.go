// Package readability extracts the main text of a page with go-readability.
// It serves as a second opinion when trafilatura finds no content.
package readability

import (
	"strings"

	"github.com/fwojciec/orgscout"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements orgscout.MainTextExtractor at compile time.
var _ orgscout.MainTextExtractor = (*Extractor)(nil)

// chrome are page furniture subtrees removed before scoring. On short
// pages readability may otherwise take the whole body as the article.
var chrome = map[atom.Atom]bool{
	atom.Nav: true, atom.Header: true, atom.Footer: true, atom.Aside: true, atom.Form: true,
}

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// MainText returns the article text, one non-empty line per paragraph.
func (e *Extractor) MainText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", orgscout.Errorf(orgscout.EINVALID, "empty HTML input")
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", orgscout.Errorf(orgscout.EINVALID, "parse HTML: %v", err)
	}
	removeChrome(doc)

	article, err := readability.FromDocument(doc, nil)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, line := range strings.Split(article.TextContent, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func removeChrome(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && chrome[c.DataAtom] {
			n.RemoveChild(c)
		} else {
			removeChrome(c)
		}
		c = next
	}
}
