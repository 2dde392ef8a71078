package mock

import (
	"context"
	"io"

	"github.com/fwojciec/orgscout"
)

var _ orgscout.SpreadsheetEncoder = (*SpreadsheetEncoder)(nil)

// SpreadsheetEncoder is a mock implementation of orgscout.SpreadsheetEncoder.
type SpreadsheetEncoder struct {
	EncodeSourcesFn  func(w io.Writer, schema orgscout.Schema, orgs []*orgscout.Organization) error
	EncodeCombinedFn func(w io.Writer, schema orgscout.Schema, report *orgscout.Report, batches []orgscout.SourceOrganizations) error
}

func (e *SpreadsheetEncoder) EncodeSources(w io.Writer, schema orgscout.Schema, orgs []*orgscout.Organization) error {
	return e.EncodeSourcesFn(w, schema, orgs)
}

func (e *SpreadsheetEncoder) EncodeCombined(w io.Writer, schema orgscout.Schema, report *orgscout.Report, batches []orgscout.SourceOrganizations) error {
	return e.EncodeCombinedFn(w, schema, report, batches)
}

var _ orgscout.ExportStore = (*ExportStore)(nil)

// ExportStore is a mock implementation of orgscout.ExportStore.
type ExportStore struct {
	WriteFn func(ctx context.Context, name string, encode func(w io.Writer) error) (string, error)
}

func (s *ExportStore) Write(ctx context.Context, name string, encode func(w io.Writer) error) (string, error) {
	return s.WriteFn(ctx, name, encode)
}
