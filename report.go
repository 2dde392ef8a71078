package orgscout

import "strings"

// Status summarizes how close a source came to its expected count.
type Status string

// Completeness statuses.
const (
	StatusComplete  Status = "Complete"
	StatusAdequate  Status = "Adequate"
	StatusNeedsWork Status = "Needs Work"
)

// AdequateGap is the largest shortfall still considered adequate, exclusive.
const AdequateGap = 5

// questionableTerms flag names that are probably site chrome rather than
// organizations. Matched as substrings of the lowercased name.
var questionableTerms = []string{
	"faculty & staff", "my apps", "admissions", "academic programs",
	"financial aid", "library", "bookstore", "dining", "parking",
	"campus map", "directory", "calendar", "news", "events",
	"about us", "contact us", "home", "search", "menu", "navigation",
	"tuition", "scholarships", "degrees", "certificates",
	"president", "administration", "welcome", "overview",
}

// IsQuestionableName reports whether name contains a term typical of
// navigation or administrative pages.
func IsQuestionableName(name string) bool {
	lower := strings.ToLower(name)
	for _, term := range questionableTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// SourceReport is the quality assessment of one source's organizations.
type SourceReport struct {
	Source   *Source
	Found    int
	Expected int
	Gap      int
	Status   Status

	Questionable []string

	WithProfileURL int
	WithWebsite    int
	WithSocial     int
	WithEmail      int
	WithPhone      int
}

// Percentage returns found as a percentage of expected. A source with no
// expected count is reported as fully complete.
func (r *SourceReport) Percentage() float64 {
	if r.Expected <= 0 {
		return 100
	}
	return float64(r.Found) / float64(r.Expected) * 100
}

// LinkCompleteness returns the share of profile, website and social slots
// that are filled, as a percentage.
func (r *SourceReport) LinkCompleteness() float64 {
	if r.Found == 0 {
		return 0
	}
	filled := r.WithProfileURL + r.WithWebsite + r.WithSocial
	return float64(filled) / float64(r.Found*3) * 100
}

// Report aggregates source reports.
type Report struct {
	Sources []*SourceReport

	TotalFound        int
	TotalExpected     int
	TotalQuestionable int
}

// Adequate returns the number of sources that are Complete or Adequate.
func (r *Report) Adequate() int {
	var n int
	for _, s := range r.Sources {
		if s.Status != StatusNeedsWork {
			n++
		}
	}
	return n
}

// SourceOrganizations pairs a source with its stored organizations.
type SourceOrganizations struct {
	Source        *Source
	Organizations []*Organization
}

// Assess builds a quality report. The expected count of a source is its
// configured hint; sources without one have no gap.
func Assess(batches []SourceOrganizations) *Report {
	report := &Report{}
	for _, batch := range batches {
		sr := assessSource(batch)
		report.Sources = append(report.Sources, sr)
		report.TotalFound += sr.Found
		report.TotalExpected += sr.Expected
		report.TotalQuestionable += len(sr.Questionable)
	}
	return report
}

func assessSource(batch SourceOrganizations) *SourceReport {
	sr := &SourceReport{
		Source: batch.Source,
		Found:  len(batch.Organizations),
	}
	if batch.Source != nil {
		sr.Expected = batch.Source.Expected
	}
	if sr.Expected > sr.Found {
		sr.Gap = sr.Expected - sr.Found
	}
	switch {
	case sr.Gap == 0:
		sr.Status = StatusComplete
	case sr.Gap < AdequateGap:
		sr.Status = StatusAdequate
	default:
		sr.Status = StatusNeedsWork
	}

	for _, org := range batch.Organizations {
		if IsQuestionableName(org.Name) {
			sr.Questionable = append(sr.Questionable, org.Name)
		}
		if IsHTTPLink(org.ProfileURL) {
			sr.WithProfileURL++
		}
		if IsHTTPLink(org.Website) {
			sr.WithWebsite++
		}
		for _, link := range org.Social {
			if IsHTTPLink(link) {
				sr.WithSocial++
				break
			}
		}
		if org.Email != "" {
			sr.WithEmail++
		}
		if org.Phone != "" {
			sr.WithPhone++
		}
	}
	return sr
}
