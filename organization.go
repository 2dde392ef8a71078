package orgscout

import (
	"context"
	"strings"
	"time"
)

// Category is the label assigned to an organization by a Classifier.
type Category string

// Category labels. General is the fallback when no rule matches.
const (
	CategoryAcademic          Category = "Academic"
	CategoryArts              Category = "Arts"
	CategoryAthletics         Category = "Athletics"
	CategoryCultural          Category = "Cultural"
	CategoryGreekLife         Category = "Greek Life"
	CategoryProfessional      Category = "Professional"
	CategoryReligious         Category = "Religious"
	CategoryService           Category = "Service"
	CategoryStudentGovernment Category = "Student Government"
	CategorySpecialInterest   Category = "Special Interest"
	CategoryGeneral           Category = "General"
)

// Categories returns every valid category label, General last.
func Categories() []Category {
	return []Category{
		CategoryAcademic,
		CategoryArts,
		CategoryAthletics,
		CategoryCultural,
		CategoryGreekLife,
		CategoryProfessional,
		CategoryReligious,
		CategoryService,
		CategoryStudentGovernment,
		CategorySpecialInterest,
		CategoryGeneral,
	}
}

// Valid reports whether c is one of the fixed category labels.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Platform identifies a social network.
type Platform string

// Supported social platforms.
const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
)

// Platforms returns the supported platforms in resolution order.
func Platforms() []Platform {
	return []Platform{
		PlatformFacebook,
		PlatformTwitter,
		PlatformInstagram,
		PlatformLinkedIn,
		PlatformYouTube,
		PlatformTikTok,
	}
}

// Strategy identifies the candidate-location heuristic that produced a record.
// Lower values run first and win merge ties.
type Strategy int

// Strategies in cascade order.
const (
	StrategyStructured Strategy = iota + 1
	StrategyListItem
	StrategyHeading
	StrategyLinkedPage
	StrategyRawText
)

// String returns the strategy's short name.
func (s Strategy) String() string {
	switch s {
	case StrategyStructured:
		return "structured"
	case StrategyListItem:
		return "list"
	case StrategyHeading:
		return "heading"
	case StrategyLinkedPage:
		return "linked"
	case StrategyRawText:
		return "text"
	}
	return "unknown"
}

// Organization is one extracted organization record.
type Organization struct {
	ID          string              `json:"id"`
	SourceID    string              `json:"sourceId"`
	Name        string              `json:"name"`
	Category    Category            `json:"category"`
	SourceURL   string              `json:"sourceUrl"`
	ProfileURL  string              `json:"profileUrl,omitempty"`
	ImageURL    string              `json:"imageUrl,omitempty"`
	Description string              `json:"description,omitempty"`
	Email       string              `json:"email,omitempty"`
	Phone       string              `json:"phone,omitempty"`
	Website     string              `json:"website,omitempty"`
	Social      map[Platform]string `json:"social,omitempty"`
	Strategy    Strategy            `json:"strategy,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// Validate returns an error if the organization contains invalid fields.
func (o *Organization) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return Errorf(EINVALID, "organization name required")
	}
	if !o.Category.Valid() {
		return Errorf(EINVALID, "organization category %q unknown", o.Category)
	}
	if o.Email != "" && !IsValidEmail(o.Email) {
		return Errorf(EINVALID, "organization email %q invalid", o.Email)
	}
	if o.Phone != "" && len(phoneDigits(o.Phone)) != 10 {
		return Errorf(EINVALID, "organization phone %q invalid", o.Phone)
	}
	return nil
}

// SocialLink returns the link for a platform, or "" when absent.
func (o *Organization) SocialLink(p Platform) string {
	if o.Social == nil {
		return ""
	}
	return o.Social[p]
}

// Clone returns a deep copy of the organization.
func (o *Organization) Clone() *Organization {
	c := *o
	if o.Social != nil {
		c.Social = make(map[Platform]string, len(o.Social))
		for k, v := range o.Social {
			c.Social[k] = v
		}
	}
	return &c
}

// NormalizeName returns the deduplication key for an organization name:
// lowercased, trimmed, with inner whitespace collapsed.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Classifier assigns a category to an organization.
type Classifier interface {
	// Classify returns exactly one category for the name and description.
	// Returns CategoryGeneral when nothing matches.
	Classify(name, description string) Category
}

// NameFilter decides whether a text fragment plausibly names an organization.
type NameFilter interface {
	// LooksLikeEntityName applies the block-level bounds (3..300 characters).
	LooksLikeEntityName(text string) bool

	// LooksLikeInlineName applies the tighter inline bounds (3..200 characters)
	// used for link text.
	LooksLikeInlineName(text string) bool
}

// OrganizationExtractor extracts organization records from one HTML document.
type OrganizationExtractor interface {
	// Extract runs the candidate cascade over html and returns merged records.
	// The expected count gates cascade depth; values <= 0 mean DefaultExpectedCount.
	Extract(ctx context.Context, html string, baseURL string, expected int) ([]*Organization, error)
}

// DefaultExpectedCount is used when a source has no expected-count hint.
const DefaultExpectedCount = 10

// OrganizationService represents a service for managing extracted organizations.
type OrganizationService interface {
	// ReplaceOrganizations atomically replaces all organizations of a source.
	// Returns ENOTFOUND if the source does not exist.
	ReplaceOrganizations(ctx context.Context, sourceID string, orgs []*Organization) error

	// FindOrganizations retrieves organizations matching the filter,
	// in discovery order.
	FindOrganizations(ctx context.Context, filter OrganizationFilter) ([]*Organization, error)
}

// OrganizationFilter represents a filter for FindOrganizations.
type OrganizationFilter struct {
	SourceID *string   `json:"sourceId"`
	Category *Category `json:"category"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
