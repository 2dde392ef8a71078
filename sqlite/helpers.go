package sqlite

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/orgscout"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// encodeJSON marshals v for a TEXT column.
func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Fingerprint hashes every stored field of an organization except its
// identity and timestamps. Equal fingerprints mean the record did not
// change between harvests.
func Fingerprint(org *orgscout.Organization) string {
	h := xxhash.New()
	for _, v := range []string{
		orgscout.NormalizeName(org.Name),
		string(org.Category),
		org.ProfileURL,
		org.ImageURL,
		org.Description,
		org.Email,
		org.Phone,
		org.Website,
	} {
		_, _ = h.WriteString(v)
		_, _ = h.WriteString("\x00")
	}
	for _, p := range orgscout.Platforms() {
		_, _ = h.WriteString(org.SocialLink(p))
		_, _ = h.WriteString("\x00")
	}
	var b [8]byte
	sum := h.Sum64()
	for i := range b {
		b[i] = byte(sum >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}
