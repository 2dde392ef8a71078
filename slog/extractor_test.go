package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/orgscout"
	"github.com/fwojciec/orgscout/mock"
	orgslog "github.com/fwojciec/orgscout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs url and counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.OrganizationExtractor{
			ExtractFn: func(ctx context.Context, html string, baseURL string, expected int) ([]*orgscout.Organization, error) {
				return []*orgscout.Organization{{Name: "Chess Club"}, {Name: "Choir"}}, nil
			},
		}

		ex := orgslog.NewLoggingExtractor(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		orgs, err := ex.Extract(context.Background(), "<html></html>", "https://bhsu.edu/clubs", 75)

		require.NoError(t, err)
		assert.Len(t, orgs, 2)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "url=https://bhsu.edu/clubs")
		assert.Contains(t, output, "expected=75")
		assert.Contains(t, output, "found=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.OrganizationExtractor{
			ExtractFn: func(ctx context.Context, html string, baseURL string, expected int) ([]*orgscout.Organization, error) {
				return nil, errors.New("parse failed")
			},
		}

		_, err := orgslog.NewLoggingExtractor(inner, slog.New(slog.NewTextHandler(&buf, nil))).
			Extract(context.Background(), "", "https://bhsu.edu/clubs", 0)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"parse failed\"")
	})
}

func TestLoggingOrganizationService(t *testing.T) {
	t.Parallel()

	t.Run("logs replace at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.OrganizationService{
			ReplaceOrganizationsFn: func(ctx context.Context, sourceID string, orgs []*orgscout.Organization) error {
				return nil
			},
		}

		svc := orgslog.NewLoggingOrganizationService(inner, debugLogger(&buf))
		err := svc.ReplaceOrganizations(context.Background(), "src-1", []*orgscout.Organization{{Name: "Choir"}})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "replace organizations")
		assert.Contains(t, output, "source=src-1")
		assert.Contains(t, output, "count=1")
	})

	t.Run("delegates find", func(t *testing.T) {
		t.Parallel()

		inner := &mock.OrganizationService{
			FindOrganizationsFn: func(ctx context.Context, filter orgscout.OrganizationFilter) ([]*orgscout.Organization, error) {
				return []*orgscout.Organization{{Name: "Choir"}}, nil
			},
		}

		var buf bytes.Buffer
		orgs, err := orgslog.NewLoggingOrganizationService(inner, debugLogger(&buf)).
			FindOrganizations(context.Background(), orgscout.OrganizationFilter{})

		require.NoError(t, err)
		assert.Len(t, orgs, 1)
		assert.Empty(t, buf.String())
	})
}
