package orgscout_test

import (
	"testing"

	"github.com/fwojciec/orgscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_CombinesContactsFromDuplicates(t *testing.T) {
	t.Parallel()

	orgs := []*orgscout.Organization{
		{Name: "Student Government Association", Category: orgscout.CategoryStudentGovernment, Email: "sga@bhsu.edu"},
		{Name: "student  government association", Category: orgscout.CategoryStudentGovernment, Phone: "(605) 642-6000"},
	}

	got := orgscout.Merge(orgs)

	require.Len(t, got, 1)
	assert.Equal(t, "Student Government Association", got[0].Name)
	assert.Equal(t, "sga@bhsu.edu", got[0].Email)
	assert.Equal(t, "(605) 642-6000", got[0].Phone)
	assert.Empty(t, orgs[0].Phone, "input must not be modified")
}

func TestMerge_FirstNonEmptyWins(t *testing.T) {
	t.Parallel()

	orgs := []*orgscout.Organization{
		{Name: "Chess Club", Description: "First description", Strategy: orgscout.StrategyListItem},
		{Name: "Debate Society", Email: "debate@bhsu.edu"},
		{
			Name:        "CHESS CLUB",
			Description: "Second description",
			Email:       "chess@bhsu.edu",
			Category:    orgscout.CategorySpecialInterest,
			Strategy:    orgscout.StrategyLinkedPage,
			Social: map[orgscout.Platform]string{
				orgscout.PlatformInstagram: "https://instagram.com/chess",
			},
		},
	}

	got := orgscout.Merge(orgs)

	require.Len(t, got, 2)
	assert.Equal(t, "Chess Club", got[0].Name)
	assert.Equal(t, "Debate Society", got[1].Name)
	assert.Equal(t, "First description", got[0].Description)
	assert.Equal(t, "chess@bhsu.edu", got[0].Email)
	assert.Equal(t, orgscout.CategorySpecialInterest, got[0].Category)
	assert.Equal(t, orgscout.StrategyListItem, got[0].Strategy)
	assert.Equal(t, "https://instagram.com/chess", got[0].SocialLink(orgscout.PlatformInstagram))
	assert.Equal(t, orgscout.CategoryGeneral, got[1].Category)
}

func TestMerge_SpecificCategoryOverridesGeneral(t *testing.T) {
	t.Parallel()

	orgs := []*orgscout.Organization{
		{Name: "Chess Club", Category: orgscout.CategoryGeneral},
		{Name: "Chess Club", Category: orgscout.CategorySpecialInterest},
		{Name: "Chess Club", Category: orgscout.CategoryAcademic},
	}

	got := orgscout.Merge(orgs)

	require.Len(t, got, 1)
	assert.Equal(t, orgscout.CategorySpecialInterest, got[0].Category)
}

func TestMerge_SocialFirstLinkPerPlatform(t *testing.T) {
	t.Parallel()

	orgs := []*orgscout.Organization{
		{Name: "Chess Club", Social: map[orgscout.Platform]string{orgscout.PlatformFacebook: "https://facebook.com/a"}},
		{Name: "Chess Club", Social: map[orgscout.Platform]string{
			orgscout.PlatformFacebook: "https://facebook.com/b",
			orgscout.PlatformTwitter:  "https://twitter.com/b",
		}},
	}

	got := orgscout.Merge(orgs)

	require.Len(t, got, 1)
	assert.Equal(t, "https://facebook.com/a", got[0].SocialLink(orgscout.PlatformFacebook))
	assert.Equal(t, "https://twitter.com/b", got[0].SocialLink(orgscout.PlatformTwitter))
}

func TestMerge_Idempotent(t *testing.T) {
	t.Parallel()

	orgs := []*orgscout.Organization{
		{Name: "Chess Club", Email: "chess@bhsu.edu"},
		{Name: "chess club", Phone: "(605) 642-6000", Category: orgscout.CategorySpecialInterest},
		{Name: "Art Guild"},
		{Name: "  "},
	}

	once := orgscout.Merge(orgs)
	twice := orgscout.Merge(once)

	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
}

func TestMerge_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, orgscout.Merge(nil))
}
