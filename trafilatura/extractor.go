// Package trafilatura extracts the main text of linked organization pages
// with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/orgscout"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements orgscout.MainTextExtractor at compile time.
var _ orgscout.MainTextExtractor = (*Extractor)(nil)

// paragraphs are the elements whose text becomes one output line. Names
// cover both HTML tags and the tags go-trafilatura uses in its output tree.
var paragraphs = map[string]bool{
	"p": true, "li": true, "item": true, "blockquote": true, "quote": true, "pre": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true, "head": true,
	"td": true, "cell": true, "dd": true, "dt": true,
}

// chrome are page furniture subtrees that never hold main text.
var chrome = map[string]bool{
	"nav": true, "header": true, "footer": true, "aside": true, "form": true,
	"script": true, "style": true, "noscript": true, "template": true,
}

// inline elements do not break a line of loose text.
var inline = map[string]bool{
	"a": true, "ref": true, "span": true, "b": true, "i": true, "em": true, "strong": true,
	"hi": true, "small": true, "abbr": true, "code": true, "sub": true, "sup": true,
	"u": true, "font": true, "label": true, "time": true, "mark": true,
}

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// MainText returns the page's main content as plain text, one paragraph
// per line, with navigation, footers and comments removed.
func (e *Extractor) MainText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", orgscout.Errorf(orgscout.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	var lines []string
	if result.ContentNode != nil {
		lines = paragraphLines(result.ContentNode)
	}
	if len(lines) == 0 {
		lines = splitLines(result.ContentText)
	}
	lines = dropChromeLines(lines, rawHTML)
	return strings.Join(lines, "\n"), nil
}

// paragraphLines collects the text of each paragraph-level element under n.
// Text outside any paragraph element forms its own lines, broken at block
// elements. Chrome subtrees are skipped.
func paragraphLines(n *html.Node) []string {
	var lines []string
	var loose strings.Builder

	flush := func() {
		if line := collapse(loose.String()); line != "" {
			lines = append(lines, line)
		}
		loose.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			tag := strings.ToLower(c.Data)
			switch {
			case c.Type == html.TextNode:
				loose.WriteString(c.Data)
				loose.WriteByte(' ')
			case c.Type != html.ElementNode || chrome[tag]:
			case paragraphs[tag]:
				flush()
				if line := collapse(nodeText(c)); line != "" {
					lines = append(lines, line)
				}
			case inline[tag]:
				walk(c)
			default:
				flush()
				walk(c)
				flush()
			}
		}
	}
	walk(n)
	flush()
	return lines
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && chrome[strings.ToLower(c.Data)] {
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// dropChromeLines removes lines whose text is only what the page shows in
// its chrome subtrees, which the fallback tree may carry over. A line that
// starts with the whole chrome text keeps only what follows it.
func dropChromeLines(lines []string, rawHTML string) []string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return lines
	}

	seen := make(map[string]bool)
	var blocks []string
	var walk func(*html.Node, bool)
	walk = func(n *html.Node, inChrome bool) {
		if n.Type == html.ElementNode {
			if chrome[n.Data] && !inChrome && n.Data != "script" && n.Data != "style" {
				if text := collapse(chromeText(n)); text != "" {
					blocks = append(blocks, text)
				}
				inChrome = true
			}
			if inChrome {
				if text := collapse(chromeText(n)); text != "" {
					seen[text] = true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inChrome)
		}
	}
	walk(doc, false)
	if len(seen) == 0 {
		return lines
	}

	out := lines[:0]
	for _, line := range lines {
		for _, block := range blocks {
			if rest := strings.TrimPrefix(line, block+" "); rest != line {
				line = rest
			}
		}
		if !seen[line] {
			out = append(out, line)
		}
	}
	return out
}

// chromeText is the visible text of n, ignoring scripts and styles.
func chromeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
		case n.Type == html.ElementNode && (n.DataAtom == atom.Script || n.DataAtom == atom.Style):
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = collapse(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
