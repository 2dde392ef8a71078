package orgscout

// Merge collapses organizations whose names are equal after NormalizeName.
// The output keeps first-discovery order. For each group, every field takes
// the first non-empty value in group order, social links merge per platform
// with the first link winning, and the category takes the first value other
// than General. Input records are not modified. Merge is idempotent.
func Merge(orgs []*Organization) []*Organization {
	index := make(map[string]int, len(orgs))
	out := make([]*Organization, 0, len(orgs))

	for _, org := range orgs {
		if org == nil {
			continue
		}
		key := NormalizeName(org.Name)
		if key == "" {
			continue
		}
		if i, ok := index[key]; ok {
			mergeInto(out[i], org)
			continue
		}
		index[key] = len(out)
		out = append(out, org.Clone())
	}

	for _, org := range out {
		if org.Category == "" {
			org.Category = CategoryGeneral
		}
	}
	return out
}

// mergeInto fills empty fields of dst from src without overwriting.
func mergeInto(dst, src *Organization) {
	fill := func(d *string, s string) {
		if *d == "" {
			*d = s
		}
	}
	fill(&dst.SourceURL, src.SourceURL)
	fill(&dst.ProfileURL, src.ProfileURL)
	fill(&dst.ImageURL, src.ImageURL)
	fill(&dst.Description, src.Description)
	fill(&dst.Email, src.Email)
	fill(&dst.Phone, src.Phone)
	fill(&dst.Website, src.Website)

	if dst.Category == "" || dst.Category == CategoryGeneral {
		if src.Category != "" && src.Category != CategoryGeneral {
			dst.Category = src.Category
		}
	}
	if dst.Strategy == 0 {
		dst.Strategy = src.Strategy
	}

	for p, link := range src.Social {
		if link == "" {
			continue
		}
		if dst.Social == nil {
			dst.Social = make(map[Platform]string)
		}
		if dst.Social[p] == "" {
			dst.Social[p] = link
		}
	}
}
