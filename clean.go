package orgscout

import "strings"

// Clean prepares organizations for export. Names and free text are trimmed,
// records without a name are dropped, unknown categories become General and
// email or phone values that fail validation are cleared. Later records
// sharing a normalized name with an earlier one are dropped. The input is
// not modified.
func Clean(orgs []*Organization) []*Organization {
	out := make([]*Organization, 0, len(orgs))
	seen := make(map[string]bool, len(orgs))

	for _, org := range orgs {
		c := org.Clone()
		c.Name = strings.Join(strings.Fields(c.Name), " ")
		if c.Name == "" {
			continue
		}
		key := NormalizeName(c.Name)
		if seen[key] {
			continue
		}
		seen[key] = true

		c.Description = strings.TrimSpace(c.Description)
		c.ProfileURL = strings.TrimSpace(c.ProfileURL)
		c.ImageURL = strings.TrimSpace(c.ImageURL)
		c.Website = strings.TrimSpace(c.Website)

		if !c.Category.Valid() {
			c.Category = CategoryGeneral
		}
		c.Email = strings.TrimSpace(c.Email)
		if c.Email != "" && !IsValidEmail(c.Email) {
			c.Email = ""
		}
		c.Phone = FormatPhone(c.Phone)

		for p, link := range c.Social {
			if !IsHTTPLink(link) {
				delete(c.Social, p)
			}
		}
		out = append(out, c)
	}
	return out
}
