package orgscout

import (
	"net/url"
	"regexp"
	"strings"
)

// Contact holds the contact channels found for an organization.
// Empty fields mean "not found".
type Contact struct {
	Email string
	Phone string
}

// Email patterns, tried in order: standard, "[at]/[dot]" obfuscated, spaced out.
var emailPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`),
	regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+\s*[\[(]\s*at\s*[\])]\s*[a-z0-9.-]+\s*[\[(]\s*dot\s*[\])]\s*[a-z]{2,}\b`),
	regexp.MustCompile(`(?i)\b[a-z0-9._%+-]+(?:\s+@\s*|\s*@\s+)[a-z0-9-]+(?:\s*\.\s*[a-z0-9-]+)*?\s*\.\s*[a-z]{2,}\b`),
}

var (
	obfuscatedAtRe  = regexp.MustCompile(`(?i)\s*[\[(]\s*at\s*[\])]\s*`)
	obfuscatedDotRe = regexp.MustCompile(`(?i)\s*[\[(]\s*dot\s*[\])]\s*`)
	validEmailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)
)

// emailBlacklist holds fragments of addresses that never belong to an organization.
var emailBlacklist = []string{
	"noreply",
	"no-reply",
	"donotreply",
	"webmaster",
	"admin@",
	"support@university",
	"info@example",
}

// emailAssetSuffixes catch image filenames like "logo@2x.png" that look like addresses.
var emailAssetSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}

// orgEmailTokens promote addresses whose local part suggests an organization.
var orgEmailTokens = []string{"student", "club", "org", "group", "society"}

// Phone patterns, tried in order: parenthesized area code, country code
// prefixed, plain separated, dot separated, bare ten digits.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]?\d{4}\b`),
	regexp.MustCompile(`(?:\+1|\b1)[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`),
	regexp.MustCompile(`\b\d{3}[-\s]\d{3}[-\s]\d{4}\b`),
	regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{4}\b`),
	regexp.MustCompile(`\b\d{10}\b`),
}

// ExtractContact scans text for an email address and a phone number.
func ExtractContact(text string) Contact {
	return Contact{
		Email: ExtractEmail(text),
		Phone: ExtractPhone(text),
	}
}

// ExtractEmail returns the best organization email found in text, or "".
// Matches are normalized to canonical form, blacklisted addresses are
// dropped and addresses with organization tokens in the local part are
// preferred. Running ExtractEmail on its own output returns the same value.
func ExtractEmail(text string) string {
	var preferred, generic []string
	seen := make(map[string]bool)

	for _, re := range emailPatterns {
		for _, match := range re.FindAllString(text, -1) {
			email := normalizeEmail(match)
			key := strings.ToLower(email)
			if seen[key] || !IsValidEmail(email) || isBlacklistedEmail(key) {
				continue
			}
			seen[key] = true

			if hasOrgToken(key) {
				preferred = append(preferred, email)
			} else {
				generic = append(generic, email)
			}
		}
	}

	if len(preferred) > 0 {
		return preferred[0]
	}
	if len(generic) > 0 {
		return generic[0]
	}
	return ""
}

// IsValidEmail reports whether s has the shape of a single email address.
func IsValidEmail(s string) bool {
	return validEmailRe.MatchString(s)
}

func normalizeEmail(s string) string {
	s = obfuscatedAtRe.ReplaceAllString(s, "@")
	s = obfuscatedDotRe.ReplaceAllString(s, ".")
	return strings.Join(strings.Fields(s), "")
}

func isBlacklistedEmail(lower string) bool {
	for _, skip := range emailBlacklist {
		if strings.Contains(lower, skip) {
			return true
		}
	}
	for _, suffix := range emailAssetSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

func hasOrgToken(lower string) bool {
	local, _, _ := strings.Cut(lower, "@")
	for _, token := range orgEmailTokens {
		if strings.Contains(local, token) {
			return true
		}
	}
	return false
}

// ExtractPhone returns the first ten-digit phone number in text formatted as
// (XXX) XXX-XXXX, or "".
func ExtractPhone(text string) string {
	for _, re := range phonePatterns {
		for _, match := range re.FindAllString(text, -1) {
			if phone := FormatPhone(match); phone != "" {
				return phone
			}
		}
	}
	return ""
}

// FormatPhone formats a North American number as (XXX) XXX-XXXX.
// A leading country code 1 is dropped. Returns "" unless exactly ten digits
// remain. FormatPhone is idempotent.
func FormatPhone(s string) string {
	digits := phoneDigits(s)
	if len(digits) == 11 && digits[0] == '1' {
		digits = digits[1:]
	}
	if len(digits) != 10 {
		return ""
	}
	return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
}

func phoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ContactFromLinks reads mailto: and tel: hrefs. The first valid address and
// number win. Link-derived contacts take precedence over text scanning.
func ContactFromLinks(hrefs []string) Contact {
	var c Contact
	for _, href := range hrefs {
		h := strings.TrimSpace(href)
		lower := strings.ToLower(h)

		switch {
		case c.Email == "" && strings.HasPrefix(lower, "mailto:"):
			addr := h[len("mailto:"):]
			addr, _, _ = strings.Cut(addr, "?")
			if unescaped, err := url.PathUnescape(addr); err == nil {
				addr = unescaped
			}
			// mailto may list several recipients; take the first.
			addr, _, _ = strings.Cut(addr, ",")
			addr = strings.TrimSpace(addr)
			if IsValidEmail(addr) && !isBlacklistedEmail(strings.ToLower(addr)) {
				c.Email = addr
			}
		case c.Phone == "" && strings.HasPrefix(lower, "tel:"):
			c.Phone = FormatPhone(h[len("tel:"):])
		}

		if c.Email != "" && c.Phone != "" {
			break
		}
	}
	return c
}
