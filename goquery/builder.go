package goquery

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/orgscout"
)

// Description limits in characters.
const (
	MinDescriptionLength       = 20
	MaxDescriptionLength       = 1000
	MaxContainerDescription    = 800
	FallbackDescriptionTarget  = 100
	MaxLinkedPageDescription   = 1000
	minFallbackDescriptionLine = 10
)

// NameSelectors locate the name element inside a container, in order.
var NameSelectors = []string{
	"h1", "h2", "h3", "h4", "h5", "h6",
	".title", ".name", "strong", "b", ".org-name",
}

// DescriptionSelectors locate description text inside a container, in order.
var DescriptionSelectors = []string{
	".description", ".summary", ".about", ".overview", ".content",
	".details", ".info", ".mission", ".purpose", "p", ".text",
	".excerpt", ".intro", ".profile",
}

// PageDescriptionSelectors locate description text on a linked page.
var PageDescriptionSelectors = []string{
	".description", ".about", ".summary", ".content", "p", ".mission", ".overview",
}

// LogoSelectors find logos by filename or alt text once plain image
// search has failed.
var LogoSelectors = []string{
	`img[alt*="logo"]`, ".logo img", ".icon img", `img[src*="logo"]`, `img[data-src*="logo"]`,
}

// PageImageSelectors locate the image of a linked page, in order.
var PageImageSelectors = []string{
	`img[alt*="logo"]`, ".logo img", "img", ".header img",
}

// boilerplatePhrases disqualify description candidates.
var boilerplatePhrases = []string{
	"click here", "read more", "learn more", "contact us", "home", "about us",
}

// fallbackSkipPrefixes mark lines that are links or calls to action.
var fallbackSkipPrefixes = []string{"http", "www", "click", "read more"}

// Builder turns candidates into organization records.
type Builder struct {
	Names      orgscout.NameFilter
	Classifier orgscout.Classifier

	// Sanitizer cleans descriptions. Optional.
	Sanitizer orgscout.Sanitizer

	// MainText supplies a description for linked pages that have no
	// description element. Optional.
	MainText orgscout.MainTextExtractor
}

// NewBuilder creates a Builder.
func NewBuilder(names orgscout.NameFilter, classifier orgscout.Classifier) *Builder {
	return &Builder{Names: names, Classifier: classifier}
}

// BuildCandidate dispatches on the kind of candidate.
func (b *Builder) BuildCandidate(c Candidate, baseURL string) (*orgscout.Organization, bool) {
	var (
		org *orgscout.Organization
		ok  bool
	)
	switch {
	case c.Page != nil:
		org, ok = b.BuildPage(c.Page, c.HTML, c.URL, c.Name)
		if ok {
			org.SourceURL = baseURL
		}
	case c.Selection != nil:
		parent := c.Parent
		if parent == nil {
			parent = c.Selection.Parent()
		}
		org, ok = b.build(c.Selection, parent, c.Name, baseURL)
	default:
		org, ok = b.BuildName(c.Name, baseURL)
	}
	if ok {
		org.Strategy = c.Strategy
	}
	return org, ok
}

// Build extracts a record from a container. Returns false when no name
// can be found.
func (b *Builder) Build(sel *goquery.Selection, baseURL string) (*orgscout.Organization, bool) {
	return b.build(sel, sel.Parent(), "", baseURL)
}

// BuildName returns a name-only record, as produced from a raw text line.
func (b *Builder) BuildName(name, baseURL string) (*orgscout.Organization, bool) {
	name = cleanText(name)
	if name == "" {
		return nil, false
	}
	return &orgscout.Organization{
		Name:      name,
		Category:  b.Classifier.Classify(name, ""),
		SourceURL: baseURL,
	}, true
}

func (b *Builder) build(sel, parent *goquery.Selection, name, baseURL string) (*orgscout.Organization, bool) {
	name = cleanText(name)
	if name == "" {
		name = b.name(sel)
	}
	if name == "" {
		return nil, false
	}

	org := &orgscout.Organization{
		Name:        name,
		SourceURL:   baseURL,
		Description: b.sanitize(b.description(sel, name)),
	}

	containerHrefs := hrefs(sel)
	allHrefs := slices.Concat(containerHrefs, hrefs(parent))

	contact := orgscout.ContactFromLinks(containerHrefs)
	fillContact(&contact, orgscout.ExtractContact(visibleText(sel)))
	if (contact.Email == "" || contact.Phone == "") && parent.Length() > 0 {
		fillContact(&contact, orgscout.ExtractContact(visibleText(parent)))
	}
	org.Email = contact.Email
	org.Phone = contact.Phone

	org.ImageURL = imageURL(baseURL, sel, parent)

	social := orgscout.ResolveSocialLinks(allHrefs, baseURL)
	social = orgscout.ScanSocialHandles(visibleText(sel), social)
	if len(social) > 0 {
		org.Social = social
	}
	org.ProfileURL, org.Website = siteLinks(baseURL, allHrefs)

	org.Category = b.Classifier.Classify(org.Name, org.Description)
	return org, true
}

// BuildPage extracts a record from a fetched linked page. The name comes
// from the anchor that led to the page.
func (b *Builder) BuildPage(page *goquery.Document, html, pageURL, name string) (*orgscout.Organization, bool) {
	name = cleanText(name)
	if name == "" {
		return nil, false
	}

	org := &orgscout.Organization{
		Name:       name,
		SourceURL:  pageURL,
		ProfileURL: pageURL,
	}

	desc := firstDescription(page.Selection, PageDescriptionSelectors, MaxLinkedPageDescription, false)
	if desc == "" {
		desc = b.mainTextDescription(html)
	}
	org.Description = b.sanitize(desc)

	pageHrefs := hrefs(page.Selection)
	contact := orgscout.ContactFromLinks(pageHrefs)
	pageText := visibleText(page.Selection)
	fillContact(&contact, orgscout.ExtractContact(pageText))
	org.Email = contact.Email
	org.Phone = contact.Phone

	social := orgscout.ResolveSocialLinks(pageHrefs, pageURL)
	social = orgscout.ScanSocialHandles(pageText, social)
	if len(social) > 0 {
		org.Social = social
	}

	for _, selector := range PageImageSelectors {
		if src := imageSource(page.Find(selector).First()); src != "" {
			if resolved := orgscout.ResolveURL(pageURL, src); resolved != "" {
				org.ImageURL = resolved
				break
			}
		}
	}

	org.Category = b.Classifier.Classify(org.Name, org.Description)
	return org, true
}

// name tries the name selectors, then the first anchor, then the first
// text line.
func (b *Builder) name(sel *goquery.Selection) string {
	for _, selector := range NameSelectors {
		el := find(sel, selector).First()
		if el.Length() == 0 {
			continue
		}
		if text := visibleText(el); b.Names.LooksLikeEntityName(text) {
			return text
		}
	}

	if a := find(sel, "a").First(); a.Length() > 0 {
		if text := visibleText(a); b.Names.LooksLikeEntityName(text) {
			return text
		}
	}

	if lines := textLines(sel); len(lines) > 0 && b.Names.LooksLikeEntityName(lines[0]) {
		return lines[0]
	}
	return ""
}

// description scans description elements, then falls back to joining the
// container's text lines after the name.
func (b *Builder) description(sel *goquery.Selection, name string) string {
	if desc := firstDescription(sel, DescriptionSelectors, MaxContainerDescription, true); desc != "" {
		return desc
	}

	lines := textLines(sel)
	if len(lines) < 2 {
		return ""
	}
	var parts []string
	for i, line := range lines {
		if i == 0 || line == name {
			continue
		}
		if utf8.RuneCountInString(line) <= minFallbackDescriptionLine || hasSkipPrefix(line) {
			continue
		}
		parts = append(parts, line)
		if utf8.RuneCountInString(strings.Join(parts, " ")) > FallbackDescriptionTarget {
			break
		}
	}
	desc := strings.Join(parts, " ")
	if utf8.RuneCountInString(desc) <= MinDescriptionLength {
		return ""
	}
	return truncate(desc, MaxContainerDescription)
}

func (b *Builder) mainTextDescription(html string) string {
	if b.MainText == nil || html == "" {
		return ""
	}
	text, err := b.MainText.MainText(html)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(text, "\n") {
		line = cleanText(line)
		if utf8.RuneCountInString(line) > MinDescriptionLength && !hasBoilerplate(line) {
			return truncate(line, MaxLinkedPageDescription)
		}
	}
	return ""
}

func (b *Builder) sanitize(s string) string {
	if b.Sanitizer == nil || s == "" {
		return s
	}
	return b.Sanitizer.Sanitize(s)
}

// firstDescription returns the first element text matching selectors with
// a usable length. Container scans consider every match of a selector and
// reject boilerplate; page scans consider only the first match.
func firstDescription(sel *goquery.Selection, selectors []string, max int, container bool) string {
	for _, selector := range selectors {
		matches := find(sel, selector)
		if !container {
			matches = matches.First()
		}
		var found string
		matches.EachWithBreak(func(_ int, el *goquery.Selection) bool {
			text := visibleText(el)
			n := utf8.RuneCountInString(text)
			if container {
				if n < MinDescriptionLength || n >= MaxDescriptionLength || hasBoilerplate(text) {
					return true
				}
			} else if n <= MinDescriptionLength {
				return true
			}
			found = truncate(text, max)
			return false
		})
		if found != "" {
			return found
		}
	}
	return ""
}

func hasBoilerplate(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func hasSkipPrefix(line string) bool {
	lower := strings.ToLower(line)
	for _, prefix := range fallbackSkipPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// fillContact copies fields from src into empty fields of dst.
func fillContact(dst *orgscout.Contact, src orgscout.Contact) {
	if dst.Email == "" {
		dst.Email = src.Email
	}
	if dst.Phone == "" {
		dst.Phone = src.Phone
	}
}

// hrefs returns the href of every anchor in sel, in document order.
func hrefs(sel *goquery.Selection) []string {
	if sel == nil {
		return nil
	}
	var out []string
	find(sel, "a[href]").Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			out = append(out, href)
		}
	})
	return out
}

// siteLinks returns the first same-site and the first external non-social
// http(s) link.
func siteLinks(baseURL string, hrefs []string) (profile, website string) {
	for _, href := range hrefs {
		if isNonHTTPLink(href) {
			continue
		}
		resolved := orgscout.ResolveURL(baseURL, href)
		if resolved == "" || !orgscout.IsHTTPLink(resolved) {
			continue
		}
		if _, social := orgscout.PlatformForURL(resolved); social {
			continue
		}
		if orgscout.SameSite(baseURL, resolved) {
			if profile == "" {
				profile = resolved
			}
		} else if website == "" {
			website = resolved
		}
		if profile != "" && website != "" {
			break
		}
	}
	return profile, website
}

// imageURL searches the container, then the parent, then logo patterns.
func imageURL(baseURL string, sel, parent *goquery.Selection) string {
	for _, scope := range []*goquery.Selection{sel, parent} {
		if src := firstImage(baseURL, find(scope, "img[src]")); src != "" {
			return src
		}
	}
	for _, selector := range LogoSelectors {
		for _, scope := range []*goquery.Selection{sel, parent} {
			if src := firstImage(baseURL, find(scope, selector)); src != "" {
				return src
			}
		}
	}
	return ""
}

func firstImage(baseURL string, imgs *goquery.Selection) string {
	var found string
	imgs.EachWithBreak(func(_ int, img *goquery.Selection) bool {
		if resolved := orgscout.ResolveURL(baseURL, imageSource(img)); resolved != "" {
			found = resolved
			return false
		}
		return true
	})
	return found
}

// imageSource returns src, falling back to the lazy-loading data-src.
func imageSource(img *goquery.Selection) string {
	if src, ok := img.Attr("src"); ok && strings.TrimSpace(src) != "" {
		return src
	}
	src, _ := img.Attr("data-src")
	return src
}

// find matches selector against the descendants of sel. Multi-node
// containers, such as a heading with its following siblings, also match
// against their own nodes.
func find(sel *goquery.Selection, selector string) *goquery.Selection {
	found := sel.Find(selector)
	if sel.Length() > 1 {
		found = sel.Filter(selector).AddSelection(found)
	}
	return found
}
