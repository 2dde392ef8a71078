package orgscout

import (
	"context"
	"io"
	"strings"
	"time"
	"unicode"
)

// ExportSuffix ends every per-source export file name.
const ExportSuffix = "_Organizations.xlsx"

// ExportFileName returns the per-source export file name: characters other
// than letters, digits, underscore, hyphen and whitespace are dropped and
// whitespace becomes underscores, e.g. "St. Mary's College" gives
// "St_Marys_College_Organizations.xlsx".
func ExportFileName(sourceName string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(sourceName) {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune('_')
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String() + ExportSuffix
}

// CombinedExportFileName names the all-sources workbook written at t.
func CombinedExportFileName(t time.Time) string {
	return "Organizations_Combined_" + t.Format("20060102_1504") + ".xlsx"
}

// SpreadsheetEncoder encodes organizations as spreadsheet workbooks.
type SpreadsheetEncoder interface {
	// EncodeSources writes one source's organizations as a single sheet.
	EncodeSources(w io.Writer, schema Schema, orgs []*Organization) error

	// EncodeCombined writes a workbook with a per-source summary, every
	// organization tagged with its source, and overall statistics.
	EncodeCombined(w io.Writer, schema Schema, report *Report, batches []SourceOrganizations) error
}

// ExportStore persists export files.
type ExportStore interface {
	// Write creates or replaces the named file with the output of encode.
	// A failed encode leaves any previous file untouched.
	Write(ctx context.Context, name string, encode func(w io.Writer) error) (path string, err error)
}
