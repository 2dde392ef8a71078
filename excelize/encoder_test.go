package excelize_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fwojciec/orgscout"
	orgexcel "github.com/fwojciec/orgscout/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleOrgs() []*orgscout.Organization {
	return []*orgscout.Organization{
		{
			Name:       "Chess Club",
			Category:   orgscout.CategorySpecialInterest,
			SourceURL:  "https://bhsu.edu/clubs",
			ProfileURL: "https://bhsu.edu/clubs/chess",
			Email:      "chess@bhsu.edu",
			Social: map[orgscout.Platform]string{
				orgscout.PlatformInstagram: "https://www.instagram.com/bhsuchess",
			},
		},
		{
			Name:        "Choir",
			Category:    orgscout.CategoryArts,
			SourceURL:   "https://bhsu.edu/clubs",
			Description: strings.Repeat("Sings. ", 20),
		},
	}
}

func open(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestEncoder_EncodeSources(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows in schema order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, orgexcel.NewEncoder().EncodeSources(&buf, orgscout.SchemaStandard, sampleOrgs()))

		f := open(t, &buf)
		assert.Equal(t, []string{orgexcel.SheetOrganizations}, f.GetSheetList())

		rows, err := f.GetRows(orgexcel.SheetOrganizations)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, orgscout.SchemaStandard.Headers(), rows[0])
		assert.Equal(t, "Special Interest", rows[1][0])
		assert.Equal(t, "Chess Club", rows[1][1])
		assert.Equal(t, "https://bhsu.edu/clubs/chess", rows[1][2])
		assert.Equal(t, "chess@bhsu.edu", rows[1][5])
		assert.Equal(t, "https://www.instagram.com/bhsuchess", rows[1][8])
		assert.Equal(t, "Choir", rows[2][1])
		assert.Equal(t, "https://bhsu.edu/clubs", rows[2][2], "profile link falls back to source page")
	})

	t.Run("uses compact schema headers", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, orgexcel.NewEncoder().EncodeSources(&buf, orgscout.SchemaCompact, sampleOrgs()))

		rows, err := open(t, &buf).GetRows(orgexcel.SheetOrganizations)
		require.NoError(t, err)
		assert.Equal(t, orgscout.SchemaCompact.Headers(), rows[0])
		assert.Equal(t, "Chess Club", rows[1][0])
		assert.Equal(t, "Special Interest", rows[1][1])
	})

	t.Run("sizes columns to content with a cap", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, orgexcel.NewEncoder().EncodeSources(&buf, orgscout.SchemaStandard, sampleOrgs()))
		f := open(t, &buf)

		name, err := f.GetColWidth(orgexcel.SheetOrganizations, "B")
		require.NoError(t, err)
		assert.Equal(t, float64(len("Organization Name")+2), name)

		desc, err := f.GetColWidth(orgexcel.SheetOrganizations, "E")
		require.NoError(t, err)
		assert.Equal(t, float64(orgexcel.MaxColumnWidth), desc)
	})

	t.Run("writes header only for no organizations", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, orgexcel.NewEncoder().EncodeSources(&buf, orgscout.SchemaStandard, nil))

		rows, err := open(t, &buf).GetRows(orgexcel.SheetOrganizations)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

func TestEncoder_EncodeCombined(t *testing.T) {
	t.Parallel()

	bhsu := &orgscout.Source{Name: "BHSU", Expected: 2}
	sdsu := &orgscout.Source{Name: "SDSU", Expected: 10}
	batches := []orgscout.SourceOrganizations{
		{Source: bhsu, Organizations: sampleOrgs()},
		{Source: sdsu, Organizations: []*orgscout.Organization{{Name: "Rodeo Team", Category: orgscout.CategoryAthletics}}},
	}
	report := orgscout.Assess(batches)

	var buf bytes.Buffer
	require.NoError(t, orgexcel.NewEncoder().EncodeCombined(&buf, orgscout.SchemaStandard, report, batches))
	f := open(t, &buf)

	assert.Equal(t, []string{orgexcel.SheetSourceSummary, orgexcel.SheetAllOrganizations, orgexcel.SheetStatistics}, f.GetSheetList())

	t.Run("summarizes each source", func(t *testing.T) {
		rows, err := f.GetRows(orgexcel.SheetSourceSummary)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Source", rows[0][0])
		assert.Equal(t, []string{"BHSU", "2", "2", "0", "100", "Complete"}, rows[1][:6])
		assert.Equal(t, []string{"SDSU", "1", "10", "9", "10", "Needs Work"}, rows[2][:6])
	})

	t.Run("tags organizations with their source", func(t *testing.T) {
		rows, err := f.GetRows(orgexcel.SheetAllOrganizations)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, append([]string{"Source"}, orgscout.SchemaStandard.Headers()...), rows[0])
		assert.Equal(t, "BHSU", rows[1][0])
		assert.Equal(t, "Chess Club", rows[1][2])
		assert.Equal(t, "SDSU", rows[3][0])
		assert.Equal(t, "Rodeo Team", rows[3][2])
	})

	t.Run("reports overall statistics", func(t *testing.T) {
		rows, err := f.GetRows(orgexcel.SheetStatistics)
		require.NoError(t, err)
		require.Len(t, rows, 8)
		assert.Equal(t, []string{"Total Sources", "2"}, rows[1])
		assert.Equal(t, []string{"Total Organizations Found", "3"}, rows[2])
		assert.Equal(t, []string{"Total Organizations Expected", "12"}, rows[3])
		assert.Equal(t, []string{"Overall Success Rate (%)", "25"}, rows[4])
		assert.Equal(t, []string{"Sources Complete or Adequate", "1"}, rows[5])
		assert.Equal(t, []string{"Sources Needing Work", "1"}, rows[6])
	})
}
