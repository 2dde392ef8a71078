// Package excelize writes organization spreadsheets with excelize.
package excelize

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/fwojciec/orgscout"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	SheetOrganizations    = "Organizations"
	SheetSourceSummary    = "Source Summary"
	SheetAllOrganizations = "All Organizations"
	SheetStatistics       = "Statistics"
)

// MaxColumnWidth caps auto-sized columns.
const MaxColumnWidth = 50

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

var _ orgscout.SpreadsheetEncoder = (*Encoder)(nil)

// Encoder writes .xlsx workbooks. Header rows are bold and every column
// is sized to its longest value plus two, capped at MaxColumnWidth.
type Encoder struct{}

// NewEncoder creates an Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeSources writes orgs to a single "Organizations" sheet laid out by
// schema.
func (e *Encoder) EncodeSources(w io.Writer, schema orgscout.Schema, orgs []*orgscout.Organization) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetOrganizations); err != nil {
		return err
	}

	rows := make([][]any, 0, len(orgs))
	for _, org := range orgs {
		rows = append(rows, cells(schema.Row(org)))
	}
	if err := writeTable(f, SheetOrganizations, cells(schema.Headers()), rows); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

// EncodeCombined writes the summary, all-organizations and statistics
// sheets for every batch.
func (e *Encoder) EncodeCombined(w io.Writer, schema orgscout.Schema, report *orgscout.Report, batches []orgscout.SourceOrganizations) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, SheetSourceSummary); err != nil {
		return err
	}
	for _, name := range []string{SheetAllOrganizations, SheetStatistics} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	summary := make([][]any, 0, len(report.Sources))
	for _, sr := range report.Sources {
		summary = append(summary, []any{
			sourceName(sr.Source),
			sr.Found,
			sr.Expected,
			sr.Gap,
			round1(sr.Percentage()),
			string(sr.Status),
			len(sr.Questionable),
			round1(sr.LinkCompleteness()),
		})
	}
	summaryHeaders := []any{
		"Source", "Organizations Found", "Expected Count", "Gap",
		"Success Rate (%)", "Status", "Questionable Names", "Link Completeness (%)",
	}
	if err := writeTable(f, SheetSourceSummary, summaryHeaders, summary); err != nil {
		return err
	}

	var all [][]any
	for _, batch := range batches {
		name := sourceName(batch.Source)
		for _, org := range batch.Organizations {
			all = append(all, append([]any{name}, cells(schema.Row(org))...))
		}
	}
	allHeaders := append([]any{"Source"}, cells(schema.Headers())...)
	if err := writeTable(f, SheetAllOrganizations, allHeaders, all); err != nil {
		return err
	}

	overall := 0.0
	if report.TotalExpected > 0 {
		overall = round1(float64(report.TotalFound) / float64(report.TotalExpected) * 100)
	}
	stats := [][]any{
		{"Total Sources", len(report.Sources)},
		{"Total Organizations Found", report.TotalFound},
		{"Total Organizations Expected", report.TotalExpected},
		{"Overall Success Rate (%)", overall},
		{"Sources Complete or Adequate", report.Adequate()},
		{"Sources Needing Work", len(report.Sources) - report.Adequate()},
		{"Questionable Names", report.TotalQuestionable},
	}
	if err := writeTable(f, SheetStatistics, []any{"Metric", "Value"}, stats); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	_, err := f.WriteTo(w)
	return err
}

// writeTable writes a bold header row followed by rows and sizes columns.
func writeTable(f *excelize.File, sheet string, headers []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}

	for col, width := range columnWidths(headers, rows) {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

// columnWidths returns min(longest+2, MaxColumnWidth) per column, counting
// runes of each value's printed form.
func columnWidths(headers []any, rows [][]any) []float64 {
	longest := make([]int, len(headers))
	measure := func(row []any) {
		for i, v := range row {
			if i >= len(longest) {
				break
			}
			if n := utf8.RuneCountInString(fmt.Sprint(v)); n > longest[i] {
				longest[i] = n
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	widths := make([]float64, len(longest))
	for i, n := range longest {
		widths[i] = float64(min(n+2, MaxColumnWidth))
	}
	return widths
}

func cells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func sourceName(s *orgscout.Source) string {
	if s == nil {
		return ""
	}
	return s.Name
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
