package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/orgscout"
	"github.com/fwojciec/orgscout/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func createSource(t *testing.T, db *sqlite.DB, name string) *orgscout.Source {
	t.Helper()
	source := &orgscout.Source{Name: name, URL: "https://" + name + ".edu/clubs"}
	require.NoError(t, sqlite.NewSourceService(db).CreateSource(context.Background(), source))
	return source
}

func TestSourceService_CreateSource(t *testing.T) {
	t.Parallel()

	t.Run("creates source with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSourceService(setupTestDB(t))

		source := &orgscout.Source{
			Name:       "Black Hills State University",
			URL:        "https://www.bhsu.edu/clubs",
			Expected:   75,
			Alternates: []string{"https://www.bhsu.edu/orgs"},
		}

		require.NoError(t, svc.CreateSource(context.Background(), source))

		assert.NotEmpty(t, source.ID)
		assert.False(t, source.CreatedAt.IsZero())
		assert.False(t, source.UpdatedAt.IsZero())
	})

	t.Run("returns EINVALID for invalid source", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSourceService(setupTestDB(t))

		err := svc.CreateSource(context.Background(), &orgscout.Source{})
		assert.Equal(t, orgscout.EINVALID, orgscout.ErrorCode(err))
	})

	t.Run("returns ECONFLICT for duplicate name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		createSource(t, db, "bhsu")

		err := sqlite.NewSourceService(db).CreateSource(context.Background(),
			&orgscout.Source{Name: "bhsu", URL: "https://other.edu"})
		assert.Equal(t, orgscout.ECONFLICT, orgscout.ErrorCode(err))
	})
}

func TestSourceService_FindSourceByID(t *testing.T) {
	t.Parallel()

	t.Run("returns source with alternates", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewSourceService(setupTestDB(t))
		ctx := context.Background()

		source := &orgscout.Source{
			Name:       "bhsu",
			URL:        "https://www.bhsu.edu/clubs",
			Expected:   75,
			Alternates: []string{"https://www.bhsu.edu/orgs", "https://www.bhsu.edu/groups"},
		}
		require.NoError(t, svc.CreateSource(ctx, source))

		found, err := svc.FindSourceByID(ctx, source.ID)
		require.NoError(t, err)
		assert.Equal(t, source.Name, found.Name)
		assert.Equal(t, source.URL, found.URL)
		assert.Equal(t, 75, found.Expected)
		assert.Equal(t, source.Alternates, found.Alternates)
		assert.Equal(t, source.CreatedAt.Unix(), found.CreatedAt.Unix())
	})

	t.Run("returns nil alternates when none stored", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		source := createSource(t, db, "bhsu")

		found, err := sqlite.NewSourceService(db).FindSourceByID(context.Background(), source.ID)
		require.NoError(t, err)
		assert.Nil(t, found.Alternates)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		_, err := sqlite.NewSourceService(setupTestDB(t)).FindSourceByID(context.Background(), "missing")
		assert.Equal(t, orgscout.ENOTFOUND, orgscout.ErrorCode(err))
	})
}

func TestSourceService_FindSources(t *testing.T) {
	t.Parallel()

	t.Run("returns all sources ordered by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		createSource(t, db, "sdsu")
		createSource(t, db, "bhsu")
		createSource(t, db, "usd")

		sources, err := sqlite.NewSourceService(db).FindSources(context.Background(), orgscout.SourceFilter{})
		require.NoError(t, err)
		require.Len(t, sources, 3)
		assert.Equal(t, "bhsu", sources[0].Name)
		assert.Equal(t, "sdsu", sources[1].Name)
		assert.Equal(t, "usd", sources[2].Name)
	})

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		createSource(t, db, "sdsu")
		want := createSource(t, db, "bhsu")

		name := "bhsu"
		sources, err := sqlite.NewSourceService(db).FindSources(context.Background(), orgscout.SourceFilter{Name: &name})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, want.ID, sources[0].ID)
	})

	t.Run("respects limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		createSource(t, db, "a")
		createSource(t, db, "b")
		createSource(t, db, "c")

		sources, err := sqlite.NewSourceService(db).FindSources(context.Background(), orgscout.SourceFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "b", sources[0].Name)
	})

	t.Run("offset without limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		createSource(t, db, "a")
		createSource(t, db, "b")

		sources, err := sqlite.NewSourceService(db).FindSources(context.Background(), orgscout.SourceFilter{Offset: 1})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, "b", sources[0].Name)
	})
}

func TestSourceService_UpdateSource(t *testing.T) {
	t.Parallel()

	t.Run("updates fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		source := createSource(t, db, "bhsu")
		svc := sqlite.NewSourceService(db)
		ctx := context.Background()

		expected := 40
		alternates := []string{"https://bhsu.edu/orgs"}
		updated, err := svc.UpdateSource(ctx, source.ID, orgscout.SourceUpdate{
			Expected:   &expected,
			Alternates: &alternates,
		})
		require.NoError(t, err)
		assert.Equal(t, 40, updated.Expected)

		found, err := svc.FindSourceByID(ctx, source.ID)
		require.NoError(t, err)
		assert.Equal(t, 40, found.Expected)
		assert.Equal(t, alternates, found.Alternates)
	})

	t.Run("returns ECONFLICT when renaming onto existing name", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		createSource(t, db, "bhsu")
		other := createSource(t, db, "sdsu")

		name := "bhsu"
		_, err := sqlite.NewSourceService(db).UpdateSource(context.Background(), other.ID, orgscout.SourceUpdate{Name: &name})
		assert.Equal(t, orgscout.ECONFLICT, orgscout.ErrorCode(err))
	})

	t.Run("returns EINVALID for invalid URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		source := createSource(t, db, "bhsu")

		u := "ftp://bhsu.edu"
		_, err := sqlite.NewSourceService(db).UpdateSource(context.Background(), source.ID, orgscout.SourceUpdate{URL: &u})
		assert.Equal(t, orgscout.EINVALID, orgscout.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		_, err := sqlite.NewSourceService(setupTestDB(t)).UpdateSource(context.Background(), "missing", orgscout.SourceUpdate{})
		assert.Equal(t, orgscout.ENOTFOUND, orgscout.ErrorCode(err))
	})
}

func TestSourceService_DeleteSource(t *testing.T) {
	t.Parallel()

	t.Run("deletes source and its organizations", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		source := createSource(t, db, "bhsu")
		ctx := context.Background()
		orgs := sqlite.NewOrganizationService(db)
		require.NoError(t, orgs.ReplaceOrganizations(ctx, source.ID, []*orgscout.Organization{
			{Name: "Chess Club", Category: orgscout.CategorySpecialInterest},
		}))

		require.NoError(t, sqlite.NewSourceService(db).DeleteSource(ctx, source.ID))

		_, err := sqlite.NewSourceService(db).FindSourceByID(ctx, source.ID)
		assert.Equal(t, orgscout.ENOTFOUND, orgscout.ErrorCode(err))

		found, err := orgs.FindOrganizations(ctx, orgscout.OrganizationFilter{SourceID: &source.ID})
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		err := sqlite.NewSourceService(setupTestDB(t)).DeleteSource(context.Background(), "missing")
		assert.Equal(t, orgscout.ENOTFOUND, orgscout.ErrorCode(err))
	})
}
