package goquery

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/orgscout"
)

// Cascade limits.
const (
	DefaultMaxLinks     = 20
	DefaultMaxTextLines = 50
	MaxTextLineLength   = 150
)

// StructuredSelectors are probed in order; the first one matching more
// than two elements supplies the structured candidates.
var StructuredSelectors = []string{
	".organization", ".club", ".student-org", ".group",
	".accordion-item", ".card", ".listing-item",
	".org-item", ".student-organization",
	`[class*="organization"]`, `[class*="club"]`, `[class*="group"]`,
	".entry", ".item", ".member",
}

const headingSelector = "h1, h2, h3, h4, h5, h6"

// Candidate is a region of a document hypothesized to describe one
// organization.
type Candidate struct {
	Strategy orgscout.Strategy

	// Selection is the container. Nil for linked pages and raw text lines.
	Selection *goquery.Selection

	// Parent is the broader region searched for missing contact details,
	// images and links. Nil means the container's parent.
	Parent *goquery.Selection

	// Name is set when the strategy already knows the name: heading text,
	// anchor text for linked pages, or the line for raw text.
	Name string

	// URL, Page and HTML describe a fetched linked page.
	URL  string
	Page *goquery.Document
	HTML string
}

// Locator finds candidate containers with a fixed set of strategies.
type Locator struct {
	Names orgscout.NameFilter

	// Fetcher, Limiter and Visited serve the linked-page strategy.
	// Without a Fetcher the strategy finds nothing.
	Fetcher orgscout.Fetcher
	Limiter orgscout.DomainLimiter
	Visited orgscout.URLSet

	MaxLinks     int
	MaxTextLines int

	Logger *slog.Logger
}

// NewLocator creates a Locator with default limits.
func NewLocator(names orgscout.NameFilter) *Locator {
	return &Locator{
		Names:        names,
		MaxLinks:     DefaultMaxLinks,
		MaxTextLines: DefaultMaxTextLines,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Structured returns every match of the first structured selector that
// matches more than two elements.
func (l *Locator) Structured(doc *goquery.Document) []Candidate {
	for _, selector := range StructuredSelectors {
		matches := doc.Find(selector)
		if matches.Length() <= 2 {
			continue
		}
		candidates := make([]Candidate, 0, matches.Length())
		matches.Each(func(_ int, sel *goquery.Selection) {
			candidates = append(candidates, Candidate{
				Strategy:  orgscout.StrategyStructured,
				Selection: sel,
			})
		})
		return candidates
	}
	return nil
}

// ListItems returns the items of lists with more than three items whose
// text looks like an organization name. Lists inside navigation and
// footers are skipped.
func (l *Locator) ListItems(doc *goquery.Document) []Candidate {
	var candidates []Candidate
	doc.Find("ul, ol").Each(func(_ int, list *goquery.Selection) {
		items := list.ChildrenFiltered("li")
		if items.Length() <= 3 || inChrome(list) {
			return
		}
		items.Each(func(_ int, li *goquery.Selection) {
			if !l.Names.LooksLikeEntityName(visibleText(li)) {
				return
			}
			candidates = append(candidates, Candidate{
				Strategy:  orgscout.StrategyListItem,
				Selection: li,
			})
		})
	})
	return candidates
}

// Headings returns headings whose text looks like an organization name.
// The container is the heading's parent block when that block holds no
// other heading; otherwise it is the heading plus the siblings up to the
// next heading, so sections sharing one parent stay apart.
func (l *Locator) Headings(doc *goquery.Document) []Candidate {
	var candidates []Candidate
	doc.Find(headingSelector).Each(func(_ int, h *goquery.Selection) {
		if inChrome(h) {
			return
		}
		name := visibleText(h)
		if !l.Names.LooksLikeEntityName(name) {
			return
		}

		container, broader := h.Parent(), h.Parent().Parent()
		if container.Length() == 0 || container.Is("body, html") || container.ChildrenFiltered(headingSelector).Length() > 1 {
			container, broader = h.AddSelection(h.NextUntil(headingSelector)), h.Parent()
		}
		candidates = append(candidates, Candidate{
			Strategy:  orgscout.StrategyHeading,
			Selection: container,
			Parent:    broader,
			Name:      name,
		})
	})
	return candidates
}

// LinkedPages follows same-site anchors whose text looks like an
// organization name and returns each fetched page as one candidate.
// At most MaxLinks pages are fetched; each fetch waits on the domain
// limiter. Fetch failures are logged and skipped. Returns early when ctx
// is canceled.
func (l *Locator) LinkedPages(ctx context.Context, doc *goquery.Document, baseURL string) []Candidate {
	if l.Fetcher == nil {
		return nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	links := l.orgLinks(doc, base)
	if limit := l.maxLinks(); len(links) > limit {
		links = links[:limit]
	}

	var candidates []Candidate
	for _, link := range links {
		if ctx.Err() != nil {
			return candidates
		}
		if l.Visited != nil {
			if l.Visited.Test(link.url) {
				continue
			}
			l.Visited.Add(link.url)
		}

		if l.Limiter != nil {
			if err := l.Limiter.Wait(ctx, orgscout.Host(link.url)); err != nil {
				return candidates
			}
		}

		body, err := l.Fetcher.Fetch(ctx, link.url)
		if err != nil {
			l.logger().Warn("linked page fetch failed", "url", link.url, "name", link.text, "error", err)
			continue
		}
		page, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err != nil {
			l.logger().Warn("linked page parse failed", "url", link.url, "error", err)
			continue
		}
		candidates = append(candidates, Candidate{
			Strategy: orgscout.StrategyLinkedPage,
			Name:     link.text,
			URL:      link.url,
			Page:     page,
			HTML:     body,
		})
	}
	return candidates
}

type orgLink struct {
	url  string
	text string
}

// orgLinks collects same-site anchors with name-like text in document
// order, deduplicated by URL with fragments stripped. Links back to the
// page itself are dropped.
func (l *Locator) orgLinks(doc *goquery.Document, base *url.URL) []orgLink {
	seen := make(map[string]bool)
	var links []orgLink

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		if inChrome(a) {
			return
		}
		href, _ := a.Attr("href")
		if isNonHTTPLink(href) {
			return
		}
		text := visibleText(a)
		if !l.Names.LooksLikeInlineName(text) {
			return
		}
		resolved := resolveURL(base, href)
		if resolved == "" || !orgscout.IsHTTPLink(resolved) {
			return
		}
		if !orgscout.SameSite(base.String(), resolved) {
			return
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, orgLink{url: resolved, text: text})
	})
	return links
}

// RawText returns short visible text lines that look like organization
// names, capped at MaxTextLines. Navigation and footers are skipped.
func (l *Locator) RawText(doc *goquery.Document) []Candidate {
	limit := l.MaxTextLines
	if limit <= 0 {
		limit = DefaultMaxTextLines
	}

	var candidates []Candidate
	for _, line := range contentLines(doc.Selection) {
		if len(candidates) >= limit {
			break
		}
		if utf8.RuneCountInString(line) >= MaxTextLineLength {
			continue
		}
		if !l.Names.LooksLikeEntityName(line) {
			continue
		}
		candidates = append(candidates, Candidate{
			Strategy: orgscout.StrategyRawText,
			Name:     line,
		})
	}
	return candidates
}

func (l *Locator) maxLinks() int {
	if l.MaxLinks <= 0 {
		return DefaultMaxLinks
	}
	return l.MaxLinks
}

func (l *Locator) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.Logger
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
// Fragments are stripped from the resolved URL for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return href == "" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
