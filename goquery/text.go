package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements break text into separate lines.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true, atom.Footer: true,
	atom.Form: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Header: true, atom.Hr: true, atom.Li: true,
	atom.Main: true, atom.Nav: true, atom.Ol: true, atom.P: true, atom.Pre: true,
	atom.Section: true, atom.Table: true, atom.Td: true, atom.Th: true, atom.Tr: true,
	atom.Ul: true,
}

// invisibleElements never contribute visible text.
var invisibleElements = map[atom.Atom]bool{
	atom.Head: true, atom.Script: true, atom.Style: true, atom.Noscript: true,
	atom.Template: true, atom.Svg: true, atom.Iframe: true,
}

// chromeElements hold site navigation rather than page content.
var chromeElements = map[atom.Atom]bool{
	atom.Nav: true, atom.Footer: true,
}

// chromeSelector matches the same elements as chromeElements.
const chromeSelector = "nav, footer"

// textLines returns the visible text of sel split into lines at block
// boundaries, with whitespace collapsed and empty lines dropped.
func textLines(sel *goquery.Selection) []string {
	return collectLines(sel, nil)
}

// contentLines is like textLines but also skips navigation and footers.
func contentLines(sel *goquery.Selection) []string {
	return collectLines(sel, chromeElements)
}

func collectLines(sel *goquery.Selection, skip map[atom.Atom]bool) []string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if invisibleElements[n.DataAtom] || skip[n.DataAtom] {
				return
			}
		case html.CommentNode, html.DoctypeNode:
			return
		}
		block := n.Type == html.ElementNode && blockElements[n.DataAtom]
		if block {
			b.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			b.WriteByte('\n')
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = cleanText(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// visibleText returns the visible text of sel as a single line.
func visibleText(sel *goquery.Selection) string {
	return strings.Join(textLines(sel), " ")
}

// cleanText trims s and collapses inner whitespace.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate shortens s to at most n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}

// inChrome reports whether sel sits inside navigation or a footer.
func inChrome(sel *goquery.Selection) bool {
	return sel.Closest(chromeSelector).Length() > 0
}
