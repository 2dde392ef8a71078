package orgscout

import (
	"strings"
)

// FormatOrganizations formats organizations for terminal display.
// Each record is a heading line followed by its non-empty fields.
// Records are separated by blank lines.
func FormatOrganizations(orgs []*Organization) string {
	if len(orgs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(orgs))
	for _, org := range orgs {
		var b strings.Builder
		b.WriteString("## " + org.Name + " [" + FieldValue(org, FieldCategory) + "]")
		writeField(&b, "url", FieldValue(org, FieldProfileURL))
		writeField(&b, "image", org.ImageURL)
		writeField(&b, "email", org.Email)
		writeField(&b, "phone", org.Phone)
		writeField(&b, "website", org.Website)
		for _, p := range Platforms() {
			writeField(&b, string(p), org.SocialLink(p))
		}
		writeField(&b, "description", org.Description)
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("\n" + label + ": " + value)
}
