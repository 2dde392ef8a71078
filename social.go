package orgscout

import (
	"net/url"
	"regexp"
	"strings"
)

// platformTokens maps each platform to the domain tokens that identify it.
// Tokens are matched as substrings of the lowercased URL, except x.com which
// must match the host to avoid hits like "fedex.com".
var platformTokens = []struct {
	platform Platform
	tokens   []string
	hosts    []string
}{
	{PlatformFacebook, []string{"facebook.com", "fb.com", "fb.me"}, nil},
	{PlatformTwitter, []string{"twitter.com"}, []string{"x.com"}},
	{PlatformInstagram, []string{"instagram.com"}, nil},
	{PlatformLinkedIn, []string{"linkedin.com"}, nil},
	{PlatformYouTube, []string{"youtube.com", "youtu.be"}, nil},
	{PlatformTikTok, []string{"tiktok.com"}, nil},
}

// PlatformForURL classifies an absolute URL as a social platform link.
func PlatformForURL(rawURL string) (Platform, bool) {
	lower := strings.ToLower(rawURL)
	host := ""
	if u, err := url.Parse(lower); err == nil {
		host = strings.TrimPrefix(u.Hostname(), "www.")
	}

	for _, pt := range platformTokens {
		for _, token := range pt.tokens {
			if strings.Contains(lower, token) {
				return pt.platform, true
			}
		}
		for _, h := range pt.hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return pt.platform, true
			}
		}
	}
	return "", false
}

// ResolveSocialLinks resolves hrefs against baseURL and assigns each social
// link to its platform. The first link per platform wins; later links for a
// filled platform are ignored.
func ResolveSocialLinks(hrefs []string, baseURL string) map[Platform]string {
	links := make(map[Platform]string)
	for _, href := range hrefs {
		resolved := ResolveURL(baseURL, href)
		if resolved == "" {
			continue
		}
		p, ok := PlatformForURL(resolved)
		if !ok {
			continue
		}
		if _, filled := links[p]; filled {
			continue
		}
		links[p] = resolved
	}
	return links
}

var (
	// platform.com/handle written as plain text.
	socialMentionRe = regexp.MustCompile(`(?i)\b(?:www\.)?(facebook\.com|fb\.com|instagram\.com|twitter\.com|x\.com|linkedin\.com|youtube\.com|tiktok\.com)/(@?[a-z0-9_][a-z0-9_.\-]*(?:/[a-z0-9_][a-z0-9_.\-]*)?)`)

	// "Instagram: @handle" and similar cues.
	cuedHandleRe = regexp.MustCompile(`(?i)\b(facebook|fb|instagram|insta|ig|twitter|tiktok|youtube)\b[^@\n]{0,20}?[\s:(]@([a-z0-9_][a-z0-9_.]{1,29})`)

	// A bare @handle not preceded by an address local part.
	bareHandleRe = regexp.MustCompile(`(?i)(?:^|[\s(])@([a-z0-9_][a-z0-9_.]{1,29})`)
)

// mailDomains are top-level domains that mark a bare "@name.tld" as the
// domain half of a spaced-out email address rather than a handle.
var mailDomains = map[string]bool{
	"edu": true, "com": true, "org": true, "net": true, "gov": true, "mil": true,
	"us": true, "io": true, "co": true, "info": true, "biz": true, "ca": true, "uk": true,
}

var handleCues = map[string]Platform{
	"facebook":  PlatformFacebook,
	"fb":        PlatformFacebook,
	"instagram": PlatformInstagram,
	"insta":     PlatformInstagram,
	"ig":        PlatformInstagram,
	"twitter":   PlatformTwitter,
	"tiktok":    PlatformTikTok,
	"youtube":   PlatformYouTube,
}

// ScanSocialHandles scans plain text for social mentions that are not
// hyperlinks ("instagram.com/chessclub", "Instagram: @chessclub", "@chessclub")
// and returns a copy of links with still-empty platforms filled. A bare
// handle without a platform cue is taken as an Instagram handle.
func ScanSocialHandles(text string, links map[Platform]string) map[Platform]string {
	out := make(map[Platform]string, len(links))
	for k, v := range links {
		out[k] = v
	}

	fill := func(p Platform, u string) {
		if _, filled := out[p]; !filled {
			out[p] = u
		}
	}

	for _, m := range socialMentionRe.FindAllStringSubmatch(text, -1) {
		u := "https://" + strings.ToLower(m[1]) + "/" + strings.TrimRight(m[2], ".")
		if p, ok := PlatformForURL(u); ok {
			fill(p, u)
		}
	}

	cued := make(map[string]bool)
	for _, m := range cuedHandleRe.FindAllStringSubmatch(text, -1) {
		p := handleCues[strings.ToLower(m[1])]
		handle := strings.TrimRight(m[2], ".")
		cued[strings.ToLower(handle)] = true
		fill(p, HandleURL(p, handle))
	}

	// Handles already attributed to a cued platform are not reused.
	for _, m := range bareHandleRe.FindAllStringSubmatch(text, -1) {
		handle := strings.TrimRight(m[1], ".")
		if cued[strings.ToLower(handle)] || looksLikeDomain(handle) {
			continue
		}
		fill(PlatformInstagram, HandleURL(PlatformInstagram, handle))
	}

	return out
}

func looksLikeDomain(handle string) bool {
	i := strings.LastIndexByte(handle, '.')
	return i > 0 && mailDomains[strings.ToLower(handle[i+1:])]
}

// HandleURL builds the profile URL for a handle on a platform.
func HandleURL(p Platform, handle string) string {
	handle = strings.TrimPrefix(handle, "@")
	switch p {
	case PlatformFacebook:
		return "https://www.facebook.com/" + handle
	case PlatformTwitter:
		return "https://twitter.com/" + handle
	case PlatformTikTok:
		return "https://www.tiktok.com/@" + handle
	case PlatformYouTube:
		return "https://www.youtube.com/@" + handle
	case PlatformLinkedIn:
		return "https://www.linkedin.com/company/" + handle
	}
	return "https://www.instagram.com/" + handle
}

// ResolveURL resolves href against baseURL. Returns "" for empty hrefs,
// fragment-only links, javascript: and data: URIs, and unparseable input.
func ResolveURL(baseURL, href string) string {
	href = strings.TrimSpace(href)
	lower := strings.ToLower(href)
	if href == "" || strings.HasPrefix(href, "#") ||
		strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "data:") {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return ref.String()
	}
	return base.ResolveReference(ref).String()
}

// IsHTTPLink reports whether a resolved URL uses http or https.
func IsHTTPLink(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// SameSite reports whether target belongs to the same site as baseURL.
// Relative targets are same-site; otherwise either host (without "www.")
// must contain the other, so "bhsu.edu" and "clubs.bhsu.edu" match.
func SameSite(baseURL, target string) bool {
	t, err := url.Parse(strings.TrimSpace(target))
	if err != nil {
		return false
	}
	if t.Host == "" {
		return t.Scheme == "" || t.Scheme == "http" || t.Scheme == "https"
	}
	b, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	baseHost := strings.TrimPrefix(strings.ToLower(b.Hostname()), "www.")
	targetHost := strings.TrimPrefix(strings.ToLower(t.Hostname()), "www.")
	if baseHost == "" || targetHost == "" {
		return false
	}
	return strings.Contains(targetHost, baseHost) || strings.Contains(baseHost, targetHost)
}

// Host returns the lowercased host of rawURL, or "" if it cannot be parsed.
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
